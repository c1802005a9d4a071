package capture

import (
	"bytes"
	"fmt"
	"log"
	"time"

	bolt "github.com/coreos/bbolt"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack"
)

var captureItemBucket = []byte("captureitems")

// BoltStore is an ItemStore kept in an on-disk bolt database, one msgpack
// record per item keyed by the item's binary uuid.
type BoltStore struct {
	filename string
	database *bolt.DB
}

// OpenBoltStore opens (or creates) the capture item database
func OpenBoltStore(filename string) (*BoltStore, error) {
	log.Printf("Loading capture database %s", filename)
	db, err := bolt.Open(filename, 0600, &bolt.Options{Timeout: time.Second})

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(captureItemBucket)
		return err
	})

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStore{filename: filename, database: db}, nil
}

func itemKey(id string) ([]byte, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, &InvalidInputError{What: "item uuid"}
	}

	return itemID.MarshalBinary()
}

// packItem encodes an item with msgpack, honoring its JSON tags
func packItem(item *CaptureItem) ([]byte, error) {
	var outBuffer bytes.Buffer

	writer := msgpack.NewEncoder(&outBuffer)
	writer.UseJSONTag(true)
	err := writer.Encode(item)

	return outBuffer.Bytes(), err
}

func unpackItem(inBytes []byte) (*CaptureItem, error) {
	var item CaptureItem

	reader := msgpack.NewDecoder(bytes.NewBuffer(inBytes))
	reader.UseJSONTag(true)
	err := reader.Decode(&item)

	return &item, err
}

func (s *BoltStore) Save(item *CaptureItem) error {
	if item == nil {
		return &InvalidInputError{What: "item"}
	}

	key, err := itemKey(item.ID)
	if err != nil {
		return err
	}

	dataBytes, err := packItem(item)
	if err != nil {
		return fmt.Errorf("pack item %s: %w", item.ID, err)
	}

	return s.database.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(captureItemBucket).Put(key, dataBytes)
	})
}

func (s *BoltStore) Load(id string) (*CaptureItem, error) {
	key, err := itemKey(id)
	if err != nil {
		return nil, err
	}

	var item *CaptureItem
	err = s.database.View(func(tx *bolt.Tx) error {
		record := tx.Bucket(captureItemBucket).Get(key)

		if record == nil {
			return ErrItemNotFound
		}

		item, err = unpackItem(record)
		return err
	})

	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BoltStore) Delete(id string) error {
	key, err := itemKey(id)
	if err != nil {
		return err
	}

	return s.database.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(captureItemBucket)

		if bucket.Get(key) == nil {
			return ErrItemNotFound
		}

		return bucket.Delete(key)
	})
}

func (s *BoltStore) Close() error {
	if s.database != nil {
		return s.database.Close()
	}
	return nil
}
