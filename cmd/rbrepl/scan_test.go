package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputLines = []string{
	"insert 1",
	"insert 5, 3, -8 +4",
	"new my-set_2",
	"  ; just a comment",
	"find 12 ; trailing comment",
}

var tokenCounts = []int{2, 5, 2, 0, 2}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset.repl")
	defer teardown()
	//
	for i, line := range inputLines {
		toks, err := scan(line)
		if err != nil {
			t.Errorf("Unexpected error for #%d: %v", i, err)
			continue
		}
		if len(toks) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(toks))
		}
	}
}

func TestScanNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset.repl")
	defer teardown()
	//
	toks, err := scan("insert -8 +4 17")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].kind != WORD || toks[0].lexeme != "insert" {
		t.Errorf("Expected command word 'insert', is %v", toks[0])
	}
	want := []int64{-8, 4, 17}
	for i, w := range want {
		k, err := toks[i+1].number()
		if err != nil {
			t.Fatal(err)
		}
		if k != w {
			t.Errorf("Expected key %d, is %d", w, k)
		}
	}
	if _, err := toks[0].number(); err == nil {
		t.Errorf("Expected word token not to convert to a number")
	}
}

func TestScanRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset.repl")
	defer teardown()
	//
	if _, err := scan("insert 3 $$"); err == nil {
		t.Errorf("Expected unrecognized input to be reported")
	}
}
