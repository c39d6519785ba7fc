/*
Package orm stores protobuf encoded models under a bucket specific prefix.

Every entity in tradevault is addressed by a key derived from its owner, so
buckets only support point lookups. A bucket can be registered with a
QueryRouter to expose its content to clients.
*/
package orm
