// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsgs

import (
	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// Collections has one field of each collection strategy and container.
type Collections struct {
	Packed   encoding.Slice[uint32]                // 1
	Names    encoding.Slice[string]                // 2
	Set      encoding.SortedSet[int64]             // 3
	Tags     encoding.HashSet[string]              // 4
	Index    encoding.HashMap[string, uint64]      // 5
	Sorted   encoding.SortedMap[uint32, string]    // 6
	Floats   encoding.Slice[float64]               // 7
	Unpacked encoding.Slice[int32]                 // 8
	Blobs    encoding.Slice[[]byte]                // 9
	Matrix   encoding.Slice[encoding.Slice[uint8]] // 10
}

type (
	packedU32 = encoding.Packed[uint32, encoding.Varint[uint32], encoding.Slice[uint32], *encoding.Slice[uint32]]
	packedU8  = encoding.Packed[uint8, encoding.Varint[uint8], encoding.Slice[uint8], *encoding.Slice[uint8]]
)

var (
	collectionsPacked   packedU32
	collectionsNames    encoding.Unpacked[string, encoding.String, encoding.Slice[string], *encoding.Slice[string]]
	collectionsSet      encoding.Packed[int64, encoding.Varint[int64], encoding.SortedSet[int64], *encoding.SortedSet[int64]]
	collectionsTags     encoding.Unpacked[string, encoding.String, encoding.HashSet[string], *encoding.HashSet[string]]
	collectionsIndex    encoding.Map[string, uint64, encoding.String, encoding.Varint[uint64], encoding.HashMap[string, uint64], *encoding.HashMap[string, uint64]]
	collectionsSorted   encoding.Map[uint32, string, encoding.Fixed[uint32], encoding.String, encoding.SortedMap[uint32, string], *encoding.SortedMap[uint32, string]]
	collectionsFloats   encoding.Packed[float64, encoding.Fixed[float64], encoding.Slice[float64], *encoding.Slice[float64]]
	collectionsUnpacked encoding.Unpacked[int32, encoding.Varint[int32], encoding.Slice[int32], *encoding.Slice[int32]]
	collectionsBlobs    = encoding.Unpacked[[]byte, encoding.General[[]byte], encoding.Slice[[]byte], *encoding.Slice[[]byte]]{Elem: encoding.NewGeneral[[]byte]()}
	collectionsMatrix   encoding.Unpacked[encoding.Slice[uint8], packedU8, encoding.Slice[encoding.Slice[uint8]], *encoding.Slice[encoding.Slice[uint8]]]
)

func (m *Collections) IsEmpty() bool {
	return m.Packed.IsEmpty() && m.Names.IsEmpty() && m.Set.IsEmpty() &&
		m.Tags.IsEmpty() && m.Index.IsEmpty() && m.Sorted.IsEmpty() &&
		m.Floats.IsEmpty() && m.Unpacked.IsEmpty() && m.Blobs.IsEmpty() &&
		m.Matrix.IsEmpty()
}

func (m *Collections) Clear() { *m = Collections{} }

func (m *Collections) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = collectionsPacked.AppendField(b, 1, &m.Packed, &tw)
	b = collectionsNames.AppendField(b, 2, &m.Names, &tw)
	b = collectionsSet.AppendField(b, 3, &m.Set, &tw)
	b = collectionsTags.AppendField(b, 4, &m.Tags, &tw)
	b = collectionsIndex.AppendField(b, 5, &m.Index, &tw)
	b = collectionsSorted.AppendField(b, 6, &m.Sorted, &tw)
	b = collectionsFloats.AppendField(b, 7, &m.Floats, &tw)
	b = collectionsUnpacked.AppendField(b, 8, &m.Unpacked, &tw)
	b = collectionsBlobs.AppendField(b, 9, &m.Blobs, &tw)
	b = collectionsMatrix.AppendField(b, 10, &m.Matrix, &tw)
	return b
}

func (m *Collections) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	collectionsMatrix.PrependField(rb, 10, &m.Matrix, &tw)
	collectionsBlobs.PrependField(rb, 9, &m.Blobs, &tw)
	collectionsUnpacked.PrependField(rb, 8, &m.Unpacked, &tw)
	collectionsFloats.PrependField(rb, 7, &m.Floats, &tw)
	collectionsSorted.PrependField(rb, 6, &m.Sorted, &tw)
	collectionsIndex.PrependField(rb, 5, &m.Index, &tw)
	collectionsTags.PrependField(rb, 4, &m.Tags, &tw)
	collectionsSet.PrependField(rb, 3, &m.Set, &tw)
	collectionsNames.PrependField(rb, 2, &m.Names, &tw)
	collectionsPacked.PrependField(rb, 1, &m.Packed, &tw)
	tw.Finalize(rb)
}

func (m *Collections) RawLen() int {
	var tm wire.TagMeasurer
	n := collectionsPacked.FieldLen(1, &m.Packed, &tm)
	n += collectionsNames.FieldLen(2, &m.Names, &tm)
	n += collectionsSet.FieldLen(3, &m.Set, &tm)
	n += collectionsTags.FieldLen(4, &m.Tags, &tm)
	n += collectionsIndex.FieldLen(5, &m.Index, &tm)
	n += collectionsSorted.FieldLen(6, &m.Sorted, &tm)
	n += collectionsFloats.FieldLen(7, &m.Floats, &tm)
	n += collectionsUnpacked.FieldLen(8, &m.Unpacked, &tm)
	n += collectionsBlobs.FieldLen(9, &m.Blobs, &tm)
	n += collectionsMatrix.FieldLen(10, &m.Matrix, &tm)
	return n
}

func (m *Collections) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	switch tag {
	case 1:
		return wire.Annotate(collectionsPacked.DecodeField(t, dup, &m.Packed, c, ctx), "Collections", "packed")
	case 2:
		return wire.Annotate(collectionsNames.DecodeField(t, dup, &m.Names, c, ctx), "Collections", "names")
	case 3:
		return wire.Annotate(collectionsSet.DecodeField(t, dup, &m.Set, c, ctx), "Collections", "set")
	case 4:
		return wire.Annotate(collectionsTags.DecodeField(t, dup, &m.Tags, c, ctx), "Collections", "tags")
	case 5:
		return wire.Annotate(collectionsIndex.DecodeField(t, dup, &m.Index, c, ctx), "Collections", "index")
	case 6:
		return wire.Annotate(collectionsSorted.DecodeField(t, dup, &m.Sorted, c, ctx), "Collections", "sorted")
	case 7:
		return wire.Annotate(collectionsFloats.DecodeField(t, dup, &m.Floats, c, ctx), "Collections", "floats")
	case 8:
		return wire.Annotate(collectionsUnpacked.DecodeField(t, dup, &m.Unpacked, c, ctx), "Collections", "unpacked")
	case 9:
		return wire.Annotate(collectionsBlobs.DecodeField(t, dup, &m.Blobs, c, ctx), "Collections", "blobs")
	case 10:
		return wire.Annotate(collectionsMatrix.DecodeField(t, dup, &m.Matrix, c, ctx), "Collections", "matrix")
	}
	return encoding.SkipUnknown(t, c)
}

func (m *Collections) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	var (
		canon wire.Canonicity
		err   error
		name  string
	)
	switch tag {
	case 1:
		canon, err = collectionsPacked.DecodeFieldDistinguished(t, dup, &m.Packed, c, ctx)
		name = "packed"
	case 2:
		canon, err = collectionsNames.DecodeFieldDistinguished(t, dup, &m.Names, c, ctx)
		name = "names"
	case 3:
		canon, err = collectionsSet.DecodeFieldDistinguished(t, dup, &m.Set, c, ctx)
		name = "set"
	case 4:
		canon, err = collectionsTags.DecodeFieldDistinguished(t, dup, &m.Tags, c, ctx)
		name = "tags"
	case 5:
		canon, err = collectionsIndex.DecodeFieldDistinguished(t, dup, &m.Index, c, ctx)
		name = "index"
	case 6:
		canon, err = collectionsSorted.DecodeFieldDistinguished(t, dup, &m.Sorted, c, ctx)
		name = "sorted"
	case 7:
		canon, err = collectionsFloats.DecodeFieldDistinguished(t, dup, &m.Floats, c, ctx)
		name = "floats"
	case 8:
		canon, err = collectionsUnpacked.DecodeFieldDistinguished(t, dup, &m.Unpacked, c, ctx)
		name = "unpacked"
	case 9:
		canon, err = collectionsBlobs.DecodeFieldDistinguished(t, dup, &m.Blobs, c, ctx)
		name = "blobs"
	case 10:
		canon, err = collectionsMatrix.DecodeFieldDistinguished(t, dup, &m.Matrix, c, ctx)
		name = "matrix"
	default:
		return encoding.SkipUnknownDistinguished(t, c)
	}
	return encoding.CheckField(canon, err, ctx, "Collections", name)
}
