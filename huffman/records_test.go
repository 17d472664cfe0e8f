package huffman

import (
	"reflect"
	"testing"
)

func TestTreeToRecordsSimple(t *testing.T) {
	root := NewInternal(NewLeaf(3), NewLeaf(2))
	NumberNodes(root)
	got := TreeToRecords(root)
	want := []NodeRecord{{0, 3, 0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TreeToRecords = %v, want %v", got, want)
	}
}

func TestTreeToRecordsNested(t *testing.T) {
	// ((3,2),5): the inner pair is numbered 0, the root 1, and the
	// root's left field references the pair by number.
	root := NewInternal(NewInternal(NewLeaf(3), NewLeaf(2)), NewLeaf(5))
	NumberNodes(root)
	got := TreeToRecords(root)
	want := []NodeRecord{{0, 3, 0, 2}, {1, 0, 0, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TreeToRecords = %v, want %v", got, want)
	}
}

func TestTreeFromRecordsArbitraryOrder(t *testing.T) {
	// Records deliberately not in postorder: the root is last but its
	// left child is record 1 and its right child record 0.
	recs := []NodeRecord{
		{0, 5, 0, 7},
		{0, 10, 0, 12},
		{1, 1, 1, 0},
	}
	got, err := TreeFromRecords(recs, 2)
	if err != nil {
		t.Fatalf("TreeFromRecords error: %v", err)
	}
	want := NewInternal(
		NewInternal(NewLeaf(10), NewLeaf(12)),
		NewInternal(NewLeaf(5), NewLeaf(7)),
	)
	if !sameTree(got, want) {
		t.Error("TreeFromRecords built the wrong tree")
	}
}

func TestTreeFromPostorder(t *testing.T) {
	// Same table in postorder; index fields of internal references are
	// ignored, position alone determines the children.
	recs := []NodeRecord{
		{0, 5, 0, 7},
		{0, 10, 0, 12},
		{1, 0, 1, 0},
	}
	got, err := TreeFromPostorder(recs)
	if err != nil {
		t.Fatalf("TreeFromPostorder error: %v", err)
	}
	want := NewInternal(
		NewInternal(NewLeaf(5), NewLeaf(7)),
		NewInternal(NewLeaf(10), NewLeaf(12)),
	)
	if !sameTree(got, want) {
		t.Error("TreeFromPostorder built the wrong tree")
	}
}

func TestTreeFromPostorderLeftHeavy(t *testing.T) {
	// ((3,2),5) again, exercising an internal left child with a leaf
	// right sibling.
	recs := []NodeRecord{{0, 3, 0, 2}, {1, 0, 0, 5}}
	got, err := TreeFromPostorder(recs)
	if err != nil {
		t.Fatalf("TreeFromPostorder error: %v", err)
	}
	want := NewInternal(NewInternal(NewLeaf(3), NewLeaf(2)), NewLeaf(5))
	if !sameTree(got, want) {
		t.Error("TreeFromPostorder built the wrong tree")
	}
}

func TestRecordsRoundTripBuilderTrees(t *testing.T) {
	inputs := [][]byte{
		[]byte{65, 66, 67, 66},
		[]byte("serialization round trips structurally"),
		[]byte{9, 9, 9, 9}, // degenerate one-child root
		func() []byte { // all 256 symbols once each
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}(),
	}
	for _, data := range inputs {
		root, err := BuildTree(Count(data))
		if err != nil {
			t.Fatalf("BuildTree error: %v", err)
		}
		count := NumberNodes(root)
		recs := TreeToRecords(root)
		if len(recs) != count {
			t.Errorf("len(records) = %d, want internal count %d", len(recs), count)
		}

		general, err := TreeFromRecords(recs, count-1)
		if err != nil {
			t.Fatalf("TreeFromRecords error: %v", err)
		}
		if !sameTree(general, root) {
			t.Errorf("index-addressed round trip differs for %q", data)
		}

		postorder, err := TreeFromPostorder(recs)
		if err != nil {
			t.Fatalf("TreeFromPostorder error: %v", err)
		}
		if !sameTree(postorder, root) {
			t.Errorf("postorder round trip differs for %q", data)
		}
	}
}

func TestDegenerateTreeRecord(t *testing.T) {
	root, err := BuildTree(Count([]byte{7, 7}))
	if err != nil {
		t.Fatalf("BuildTree error: %v", err)
	}
	NumberNodes(root)
	recs := TreeToRecords(root)
	want := []NodeRecord{{0, 7, 0, 7}}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("TreeToRecords = %v, want %v", recs, want)
	}

	got, err := TreeFromRecords(recs, 0)
	if err != nil {
		t.Fatalf("TreeFromRecords error: %v", err)
	}
	if got.Right != nil || got.Left == nil || !got.Left.IsLeaf() || got.Left.Symbol != 7 {
		t.Errorf("degenerate reconstruction = %+v, want one-child root over leaf 7", got)
	}
}

func TestTreeFromRecordsBadIndex(t *testing.T) {
	recs := []NodeRecord{{1, 5, 0, 2}} // left reference beyond the table
	if _, err := TreeFromRecords(recs, 0); err != ErrCorrupted {
		t.Errorf("out-of-range reference: err = %v, want ErrCorrupted", err)
	}
	if _, err := TreeFromRecords(recs, 3); err != ErrCorrupted {
		t.Errorf("out-of-range root: err = %v, want ErrCorrupted", err)
	}
}

func TestTreeFromRecordsSelfReference(t *testing.T) {
	recs := []NodeRecord{{1, 0, 0, 2}} // record 0 claims itself as a child
	if _, err := TreeFromRecords(recs, 0); err != ErrCorrupted {
		t.Errorf("self-referential record: err = %v, want ErrCorrupted", err)
	}
}

func TestTreeFromPostorderUnderflow(t *testing.T) {
	recs := []NodeRecord{{1, 0, 1, 0}} // internal children with nothing built yet
	if _, err := TreeFromPostorder(recs); err != ErrCorrupted {
		t.Errorf("underflowing table: err = %v, want ErrCorrupted", err)
	}
	if _, err := TreeFromPostorder(nil); err != ErrCorrupted {
		t.Errorf("empty table: err = %v, want ErrCorrupted", err)
	}
}

func TestTreeFromPostorderLeftover(t *testing.T) {
	// Two unrelated records never join into one tree.
	recs := []NodeRecord{{0, 1, 0, 2}, {0, 3, 0, 4}}
	if _, err := TreeFromPostorder(recs); err != ErrCorrupted {
		t.Errorf("disconnected table: err = %v, want ErrCorrupted", err)
	}
}
