// Package benchmark provides performance benchmarks for memod.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare two runs:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee new.txt
//	benchstat old.txt new.txt
package benchmark
