package vectortree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/BarisAlbayrakIEEE/vectortree/vtree"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gotestingadapter.New(nil)
	m.Run()
}

func setupTest(t *testing.T) func() {
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func seqOf(n int) *PSeq[int] {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	v, err := From(values)
	if err != nil {
		panic(err)
	}
	return v
}

func TestEmptyPSeq(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := Empty[int]()
	if !v.IsEmpty() || v.Len() != 0 || v.Height() != 0 {
		t.Errorf("Empty() = (empty=%v, len=%d, height=%d), want (true, 0, 0)", v.IsEmpty(), v.Len(), v.Height())
	}
}

func TestPushBackGrowth(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := Empty[int]()
	var err error
	for i := 0; i < 40; i++ {
		v, err = v.PushBack(i)
		if err != nil {
			t.Fatalf("PushBack(%d): %v", i, err)
		}
	}
	if v.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", v.Len())
	}
	for i := uint64(0); i < 40; i++ {
		got, err := v.At(i)
		if err != nil || uint64(got) != i {
			t.Fatalf("At(%d) = (%d, %v), want (%d, nil)", i, got, err, i)
		}
	}
}

func TestPopBackAndErase(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := seqOf(50)
	v2, err := v.PopBack()
	if err != nil {
		t.Fatalf("PopBack: %v", err)
	}
	if v2.Len() != 49 {
		t.Errorf("PopBack len = %d, want 49", v2.Len())
	}

	v3, err := v.Erase(5)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	got, _ := v3.At(5)
	if got != 49 {
		t.Errorf("Erase(5)[5] = %d, want 49", got)
	}
}

func TestSetAtAndBack(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := seqOf(10)
	v2, err := v.SetAt(3, 777)
	if err != nil {
		t.Fatalf("SetAt: %v", err)
	}
	got, _ := v2.At(3)
	if got != 777 {
		t.Errorf("SetAt(3,777)[3] = %d, want 777", got)
	}
	back, err := v2.Back()
	if err != nil || back != 9 {
		t.Errorf("Back() = (%d, %v), want (9, nil)", back, err)
	}
}

func TestForEachDoesNotMutateSource(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := seqOf(10)
	v2 := v.ForEach(func(x *int) { *x += 100 })
	for i := uint64(0); i < v.Len(); i++ {
		orig, _ := v.At(i)
		if uint64(orig) != i {
			t.Fatalf("source mutated at %d: got %d, want %d", i, orig, i)
		}
		derived, _ := v2.At(i)
		if derived != orig+100 {
			t.Fatalf("derived[%d] = %d, want %d", i, derived, orig+100)
		}
	}
}

func TestErrorsIsAgainstEngineSentinels(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := Empty[int]()
	_, err := v.PopBack()
	if err == nil {
		t.Fatalf("PopBack on empty PSeq did not fail")
	}
	if !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("errors.Is(err, ErrEmptyContainer) = false")
	}
	if !errors.Is(err, vtree.ErrEmptyContainer) {
		t.Errorf("errors.Is(err, vtree.ErrEmptyContainer) = false")
	}

	if _, err := v.At(0); err == nil {
		t.Fatalf("At(0) on empty PSeq did not fail")
	} else if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("errors.Is(err, ErrIndexOutOfBounds) = false")
	}
}

func TestIteratorOverPSeq(t *testing.T) {
	teardown := setupTest(t)
	defer teardown()

	v := seqOf(100)
	count := 0
	for it := Begin(v); !it.AtEnd(); it.Next() {
		got, err := it.Deref()
		if err != nil || uint64(got) != it.Index() {
			t.Fatalf("iterator mismatch at index %d: got %d, err %v", it.Index(), got, err)
		}
		count++
	}
	if count != 100 {
		t.Errorf("iterated %d elements, want 100", count)
	}
}
