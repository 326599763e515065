// Package memory provides the in-memory memo table for memod.
//
// The store owns every memo record, assigns identifiers and enforces
// the field rules of each mutation. Nothing is persisted: the table
// lives exactly as long as the Store value.
//
// Thread Safety:
//
// A single RWMutex covers the whole table. Every read-then-write
// sequence (id computation + insert, existence check + mutation,
// existence check + removal) runs inside one critical section, so
// concurrent creates never collide on an id.
package memory
