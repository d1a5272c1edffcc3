package logkv_go

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"golang.org/x/exp/slices"

	"logkv-go/data"
	"logkv-go/index"
	"logkv-go/utils"
)

const fileLockName = "flock"

// DB is a log-structured KV store. All writes are appended to the active data
// file through the block-format WAL before the in-memory index is updated, so
// a crash at any point can be recovered by rescanning the data files.
type DB struct {
	options    Options
	mu         *sync.RWMutex
	fileIds    []int                     // sorted ids, only used while loading the index
	activeFile *data.DataFile            // current data file, the only one written to
	olderFiles map[uint32]*data.DataFile // sealed data files, read-only
	index      index.Indexer             // key directory
	fileLock   *flock.Flock              // guards the directory against a second process
}

// Open opens a database in options.DirPath, creating it if necessary, and
// rebuilds the key directory from the data files on disk.
func Open(options Options) (*DB, error) {
	if err := checkOptions(options); err != nil {
		return nil, err
	}
	if _, err := os.Stat(options.DirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(options.DirPath, os.ModePerm); err != nil {
			return nil, err
		}
	}

	// Only one process may use the directory at a time.
	fileLock := flock.New(filepath.Join(options.DirPath, fileLockName))
	hold, err := fileLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !hold {
		return nil, ErrDatabaseIsUsing
	}

	db := &DB{
		options:    options,
		mu:         &sync.RWMutex{},
		olderFiles: make(map[uint32]*data.DataFile),
		index:      index.NewIndexer(options.IndexType, options.DirPath),
		fileLock:   fileLock,
	}

	if err := db.loadDataFiles(); err != nil {
		fileLock.Unlock()
		return nil, err
	}

	if err := db.loadIndexFromDataFiles(); err != nil {
		fileLock.Unlock()
		return nil, err
	}

	return db, nil
}

// Put stores a key/value pair.
func (db *DB) Put(key []byte, value []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	logRecord := &data.LogRecord{
		Key:   key,
		Value: value,
		Type:  data.LogRecordNormal,
	}
	pos, err := db.appendLogRecord(logRecord)
	if err != nil {
		return err
	}

	if ok := db.index.Put(key, pos); !ok {
		return ErrIndexUpdateFailed
	}
	return nil
}

// Get returns the value stored for key.
func (db *DB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if len(key) == 0 {
		return nil, ErrKeyIsEmpty
	}

	logRecordPos := db.index.Get(key)
	if logRecordPos == nil {
		return nil, ErrKeyNotFound
	}
	return db.getValueByPosition(logRecordPos)
}

// Delete removes key. Deleting an absent key is not an error.
func (db *DB) Delete(key []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	if pos := db.index.Get(key); pos == nil {
		return nil
	}

	// A tombstone record makes the deletion durable; the key vanishes from
	// the rebuilt index on the next Open.
	logRecord := &data.LogRecord{
		Key:  key,
		Type: data.LogRecordDeleted,
	}
	if _, err := db.appendLogRecord(logRecord); err != nil {
		return err
	}

	if ok := db.index.Delete(key); !ok {
		return ErrIndexUpdateFailed
	}
	return nil
}

// ListKeys returns all keys in ascending order.
func (db *DB) ListKeys() [][]byte {
	iterator := db.index.Iterator(false)
	defer iterator.Close()

	keys := make([][]byte, 0, db.index.Size())
	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		keys = append(keys, iterator.Key())
	}
	return keys
}

// Fold calls fn for every key/value pair until fn returns false.
func (db *DB) Fold(fn func(key []byte, value []byte) bool) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	iterator := db.index.Iterator(false)
	defer iterator.Close()

	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		value, err := db.getValueByPosition(iterator.Value())
		if err != nil {
			return err
		}
		if !fn(iterator.Key(), value) {
			break
		}
	}
	return nil
}

// Stat describes the current state of the database.
type Stat struct {
	KeyNum      int   // number of live keys in the key directory
	DataFileNum int   // number of data files on disk
	DiskSize    int64 // total size of the data directory in bytes
}

// Stat returns basic statistics about the database.
func (db *DB) Stat() *Stat {
	db.mu.RLock()
	defer db.mu.RUnlock()

	dataFiles := len(db.olderFiles)
	if db.activeFile != nil {
		dataFiles++
	}

	diskSize, err := utils.DirSize(db.options.DirPath)
	if err != nil {
		panic(fmt.Sprintf("failed to get dir size: %v", err))
	}

	return &Stat{
		KeyNum:      db.index.Size(),
		DataFileNum: dataFiles,
		DiskSize:    diskSize,
	}
}

// Sync forces the active data file to stable storage.
func (db *DB) Sync() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.activeFile == nil {
		return nil
	}
	return db.activeFile.Sync()
}

// Close syncs and closes all data files, the index, and releases the
// directory lock.
func (db *DB) Close() error {
	defer db.fileLock.Unlock()

	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.index.Close(); err != nil {
		return err
	}

	if db.activeFile == nil {
		return nil
	}
	if err := db.activeFile.Sync(); err != nil {
		return err
	}
	if err := db.activeFile.Close(); err != nil {
		return err
	}
	for _, file := range db.olderFiles {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// getValueByPosition reads the record at pos and returns its value. The
// caller holds at least a read lock.
func (db *DB) getValueByPosition(pos *data.LogRecordPos) ([]byte, error) {
	var dataFile *data.DataFile
	if db.activeFile != nil && db.activeFile.FileId == pos.Fid {
		dataFile = db.activeFile
	} else {
		dataFile = db.olderFiles[pos.Fid]
	}
	if dataFile == nil {
		return nil, ErrDataFileNotFound
	}

	logRecord, err := dataFile.ReadLogRecordAt(pos.Offset)
	if err != nil {
		return nil, err
	}
	if logRecord.Type == data.LogRecordDeleted {
		return nil, ErrKeyNotFound
	}
	return logRecord.Value, nil
}

// appendLogRecord encodes and appends a record to the active data file,
// rotating it first if the record would push it past DataFileSize.
func (db *DB) appendLogRecord(logRecord *data.LogRecord) (*data.LogRecordPos, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.activeFile == nil {
		if err := db.setActiveDataFile(); err != nil {
			return nil, err
		}
	}

	encRecord, size := data.EncodeLogRecord(logRecord)

	if db.activeFile.WriteOff+size > db.options.DataFileSize {
		if err := db.activeFile.Sync(); err != nil {
			return nil, err
		}
		db.olderFiles[db.activeFile.FileId] = db.activeFile

		if err := db.setActiveDataFile(); err != nil {
			return nil, err
		}
	}

	offset, err := db.activeFile.WriteRecord(encRecord)
	if err != nil {
		return nil, err
	}

	if db.options.SyncWrites {
		if err := db.activeFile.Sync(); err != nil {
			return nil, err
		}
	}

	return &data.LogRecordPos{
		Fid:    db.activeFile.FileId,
		Offset: offset,
	}, nil
}

// setActiveDataFile opens the next data file for writing. The caller holds
// the write lock.
func (db *DB) setActiveDataFile() error {
	var initialFileId uint32 = 0
	if db.activeFile != nil {
		initialFileId = db.activeFile.FileId + 1
	}

	dataFile, err := data.OpenDataFile(db.options.DirPath, initialFileId)
	if err != nil {
		return err
	}
	db.activeFile = dataFile
	return nil
}

// loadDataFiles opens every *.data file in the directory, the one with the
// highest id as the active file.
func (db *DB) loadDataFiles() error {
	dirEntries, err := os.ReadDir(db.options.DirPath)
	if err != nil {
		return err
	}

	var fileIds []int
	for _, entry := range dirEntries {
		if strings.HasSuffix(entry.Name(), data.DataFileNameSuffix) {
			splitNames := strings.Split(entry.Name(), ".")
			fileId, err := strconv.Atoi(splitNames[0])
			if err != nil {
				return ErrDataDirectoryCorrupted
			}
			fileIds = append(fileIds, fileId)
		}
	}

	slices.Sort(fileIds)
	db.fileIds = fileIds

	for i, fid := range fileIds {
		dataFile, err := data.OpenDataFile(db.options.DirPath, uint32(fid))
		if err != nil {
			return err
		}
		if i == len(fileIds)-1 {
			db.activeFile = dataFile
		} else {
			db.olderFiles[uint32(fid)] = dataFile
		}
	}
	return nil
}

// loadIndexFromDataFiles streams every record out of the data files in id
// order and replays it into the key directory. A torn write at the tail of
// the newest file is dropped by the wal reader, so replay simply stops there.
func (db *DB) loadIndexFromDataFiles() error {
	if len(db.fileIds) == 0 {
		return nil
	}

	for _, fid := range db.fileIds {
		var fileId = uint32(fid)
		var dataFile *data.DataFile
		if fileId == db.activeFile.FileId {
			dataFile = db.activeFile
		} else {
			dataFile = db.olderFiles[fileId]
		}

		reader := dataFile.NewReader()
		for {
			payload, err := reader.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return err
			}
			logRecord, err := data.DecodeLogRecord(payload)
			if err != nil {
				return fmt.Errorf("replay data file %d: %w", fileId, err)
			}

			if logRecord.Type == data.LogRecordDeleted {
				db.index.Delete(logRecord.Key)
			} else {
				db.index.Put(logRecord.Key, &data.LogRecordPos{
					Fid:    fileId,
					Offset: reader.RecordOffset(),
				})
			}
		}
	}
	return nil
}

func checkOptions(options Options) error {
	if options.DirPath == "" {
		return errors.New("the database directory is empty")
	}
	if options.DataFileSize == 0 {
		return errors.New("the data file size is 0")
	}
	return nil
}
