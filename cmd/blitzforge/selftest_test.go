package main

import "testing"

func TestSelftestHashAlgorithms(t *testing.T) {
	if err := selftestHashAlgorithms(); err != nil {
		t.Fatal(err)
	}
}

func TestSelftestGenerators(t *testing.T) {
	if err := selftestGenerators(); err != nil {
		t.Fatal(err)
	}
}

func TestSelftestSimpleCrack(t *testing.T) {
	if err := selftestSimpleCrack(); err != nil {
		t.Fatal(err)
	}
}
