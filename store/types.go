package store

import "github.com/iov-one/tradevault"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = tradevault.ReadOnlyKVStore
type SetDeleter = tradevault.SetDeleter
type KVStore = tradevault.KVStore
type Batch = tradevault.Batch
type CacheableKVStore = tradevault.CacheableKVStore
type KVCacheWrap = tradevault.KVCacheWrap
type CommitKVStore = tradevault.CommitKVStore
type CommitID = tradevault.CommitID
