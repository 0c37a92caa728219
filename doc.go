// Package sortlab is a small laboratory for measuring how merge-sort
// variants behave on synthetic inputs.
//
// 🚀 What is sortlab?
//
//	A reproducible benchmarking harness that brings together:
//		• Sequences: uniform, reverse-sorted and almost-sorted integer arrays
//		• Sorting: top-down merge sort and a merge+insertion hybrid
//		• Experiments: repeated timed runs on fresh copies, averaged per size
//		• Reports: tab-separated text and terminal tables
//
// Everything is organized under four subpackages plus a driver:
//
//	sequence/   — seeded generator for the input distributions
//	sorting/    — MergeSort, HybridMergeSort, InsertionSort and Strategy
//	experiment/ — Runner, Plan, Series and Prometheus metrics
//	report/     — text and table writers for a Series
//	config/     — YAML experiment plans
//	cmd/sortlab — cobra CLI: run, sort, config
//
// Quick start:
//
//	go run ./cmd/sortlab run --sizes 1000,2000 --algorithms merge,hybrid
//
//	go get github.com/katalvlaran/sortlab
package sortlab
