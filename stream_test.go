package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestStreamAppendBuildsOrderedList(t *testing.T) {
	s := &Stream{}
	s.Append("int", 0, 1)
	s.Append("x", 0, 1)
	s.Append(";", 0, 1)
	be.Equal(t, streamText(s), "int x ;")
	be.Equal(t, s.Head.Text, "int")
	be.Equal(t, s.Tail.Text, ";")
}

func TestStreamAppendDropsEmptyText(t *testing.T) {
	s := &Stream{}
	s.Append("x", 0, 1)
	tok := s.Append("", 0, 1)
	be.True(t, tok == nil)
	be.Equal(t, streamText(s), "x")
}

func TestStreamAppendCanonicalizesHex(t *testing.T) {
	s := &Stream{}
	s.Append("0xFF", 0, 1)
	be.Equal(t, streamText(s), "255")
}

func TestStreamInsertAfterMiddle(t *testing.T) {
	s := buildStream("a", "c")
	s.InsertAfter(s.Head, "b")
	be.Equal(t, streamText(s), "a b c")
}

func TestStreamInsertAfterNilInsertsAtHead(t *testing.T) {
	s := buildStream("b", "c")
	s.InsertAfter(nil, "a")
	be.Equal(t, streamText(s), "a b c")
	be.Equal(t, s.Head.Text, "a")
}

func TestStreamInsertAfterTailUpdatesTail(t *testing.T) {
	s := buildStream("a")
	s.InsertAfter(s.Head, "b")
	be.Equal(t, s.Tail.Text, "b")
}

func TestStreamDeleteNextRemovesHeadWhenNil(t *testing.T) {
	s := buildStream("a", "b", "c")
	s.DeleteNext(nil)
	be.Equal(t, streamText(s), "b c")
	be.Equal(t, s.Head.Text, "b")
}

func TestStreamDeleteNextRemovesTailAndUpdatesTail(t *testing.T) {
	s := buildStream("a", "b")
	s.DeleteNext(s.Head)
	be.Equal(t, streamText(s), "a")
	be.Equal(t, s.Tail.Text, "a")
}

func TestStreamDeleteNextNoOpAtEnd(t *testing.T) {
	s := buildStream("a")
	s.DeleteNext(s.Head)
	be.Equal(t, streamText(s), "a")
}

func TestStreamEraseRangeExclusiveOfEndpoints(t *testing.T) {
	s := buildStream("a", "b", "c", "d")
	s.EraseRange(s.Head, s.Tail)
	be.Equal(t, streamText(s), "a d")
}

func TestStreamEraseRangeNilFromErasesFromHead(t *testing.T) {
	s := buildStream("a", "b", "c")
	s.EraseRange(nil, s.Tail)
	be.Equal(t, streamText(s), "c")
}

func TestStreamEraseRangeNilToErasesToEnd(t *testing.T) {
	s := buildStream("a", "b", "c")
	s.EraseRange(s.Head, nil)
	be.Equal(t, streamText(s), "a")
}

func TestStreamReplaceSubstitutesTokens(t *testing.T) {
	s := buildStream("x", "=", "old", ";")
	mid := s.Head.Next.Next
	s.Replace(mid, mid, []string{"new", "value"})
	be.Equal(t, streamText(s), "x = new value ;")
}

func TestFileLineFormatsPathAndLine(t *testing.T) {
	ft := &FileTable{}
	idx := ft.Index("main.c")
	tok := &Token{FileIndex: idx, Line: 7}
	be.Equal(t, FileLine(ft, tok), "[main.c:7]")
}

func TestFileLineHandlesNilToken(t *testing.T) {
	ft := &FileTable{}
	be.Equal(t, FileLine(ft, nil), "[?:0]")
}
