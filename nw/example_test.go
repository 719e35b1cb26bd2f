package nw_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/table"
)

// ExampleScore aligns the classic textbook pair with +1/-1/-1 scoring.
func ExampleScore() {
	score, err := nw.Score("GCATGCU", "GATTACA", nw.DefaultScoring(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("score:", score)
	// Output:
	// score: 0
}

// ExampleScore_descent uses the top-down strategy; the result is the same.
func ExampleScore_descent() {
	opts := nw.DefaultOptions()
	opts.Strategy = nw.Descent
	score, _ := nw.Score("AAAA", "AAAA", nw.Scoring{Match: 2, Mismatch: -1, Gap: -2}, &opts)
	fmt.Println("score:", score)
	// Output:
	// score: 8
}

// ExampleFill drives the table by hand and prints it.
func ExampleFill() {
	a, b := "GAT", "GT"
	s := nw.DefaultScoring()

	t, _ := table.New(len(a)+1, len(b)+1)
	defer t.Release()
	_ = t.InitializeBoundary(s.Gap)
	_ = nw.Fill(t, a, b, s, nw.DefaultOptions())

	fmt.Print(t)
	// Output:
	// [  0  -1  -2]
	// [ -1   1   0]
	// [ -2   0   0]
	// [ -3  -1   1]
}
