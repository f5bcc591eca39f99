package viewer

import (
	"reflect"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestRowsFromRecordTimestampUnits(t *testing.T) {
	// Whatever the column's unit, timestamps normalize to epoch milliseconds.
	sc := arrow.NewSchema([]arrow.Field{
		{Name: "ts_s", Type: arrow.FixedWidthTypes.Timestamp_s, Nullable: true},
		{Name: "ts_ms", Type: arrow.FixedWidthTypes.Timestamp_ms, Nullable: true},
		{Name: "ts_us", Type: arrow.FixedWidthTypes.Timestamp_us, Nullable: true},
		{Name: "ts_ns", Type: arrow.FixedWidthTypes.Timestamp_ns, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, sc)
	defer b.Release()
	b.Field(0).(*array.TimestampBuilder).Append(arrow.Timestamp(1700000000))
	b.Field(1).(*array.TimestampBuilder).Append(arrow.Timestamp(1700000000123))
	b.Field(2).(*array.TimestampBuilder).Append(arrow.Timestamp(1700000000123456))
	b.Field(3).(*array.TimestampBuilder).Append(arrow.Timestamp(1700000000123456789))

	rec := b.NewRecordBatch()
	defer rec.Release()

	rows := rowsFromRecord(rec, nil)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	want := map[string]int64{
		"ts_s":  1700000000000,
		"ts_ms": 1700000000123,
		"ts_us": 1700000000123,
		"ts_ns": 1700000000123,
	}
	for col, w := range want {
		if got := rows[0][col]; got != w {
			t.Errorf("%s = %v, want %d", col, got, w)
		}
	}
}

func TestRowsFromRecordScalars(t *testing.T) {
	sc := arrow.NewSchema([]arrow.Field{
		{Name: "i32", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "u32", Type: arrow.PrimitiveTypes.Uint32, Nullable: true},
		{Name: "f32", Type: arrow.PrimitiveTypes.Float32, Nullable: true},
		{Name: "flag", Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
		{Name: "blob", Type: arrow.BinaryTypes.Binary, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, sc)
	defer b.Release()
	b.Field(0).(*array.Int32Builder).Append(-7)
	b.Field(1).(*array.Uint32Builder).Append(7)
	b.Field(2).(*array.Float32Builder).Append(1.5)
	b.Field(3).(*array.BooleanBuilder).Append(true)
	b.Field(4).(*array.BinaryBuilder).Append([]byte{0x01, 0x02})

	rec := b.NewRecordBatch()
	defer rec.Release()

	row := rowsFromRecord(rec, nil)[0]

	// Narrow integers widen to int64/uint64 so JSON output is uniform.
	if row["i32"] != int64(-7) {
		t.Errorf("i32 = %#v, want int64(-7)", row["i32"])
	}
	if row["u32"] != uint64(7) {
		t.Errorf("u32 = %#v, want uint64(7)", row["u32"])
	}
	if row["f32"] != float64(1.5) {
		t.Errorf("f32 = %#v, want float64(1.5)", row["f32"])
	}
	if row["flag"] != true {
		t.Errorf("flag = %#v, want true", row["flag"])
	}
	if !reflect.DeepEqual(row["blob"], []byte{0x01, 0x02}) {
		t.Errorf("blob = %#v, want [1 2]", row["blob"])
	}
}

func TestRowsFromRecordNested(t *testing.T) {
	listType := arrow.ListOf(arrow.PrimitiveTypes.Int64)
	structType := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		arrow.Field{Name: "y", Type: arrow.BinaryTypes.String, Nullable: true},
	)
	sc := arrow.NewSchema([]arrow.Field{
		{Name: "nums", Type: listType, Nullable: true},
		{Name: "point", Type: structType, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, sc)
	defer b.Release()

	lb := b.Field(0).(*array.ListBuilder)
	lb.Append(true)
	lb.ValueBuilder().(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)

	sb := b.Field(1).(*array.StructBuilder)
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Int64Builder).Append(7)
	sb.FieldBuilder(1).(*array.StringBuilder).Append("up")

	rec := b.NewRecordBatch()
	defer rec.Release()

	row := rowsFromRecord(rec, nil)[0]

	wantNums := []interface{}{int64(1), int64(2), int64(3)}
	if !reflect.DeepEqual(row["nums"], wantNums) {
		t.Errorf("nums = %#v, want %#v", row["nums"], wantNums)
	}

	wantPoint := map[string]interface{}{"x": int64(7), "y": "up"}
	if !reflect.DeepEqual(row["point"], wantPoint) {
		t.Errorf("point = %#v, want %#v", row["point"], wantPoint)
	}
}

func TestRowsFromRecordNulls(t *testing.T) {
	sc := testSchema(nil)
	rec := buildRecord(t, sc, 0, 1)
	defer rec.Release()

	row := rowsFromRecord(rec, nil)[0]
	if row["name"] != nil {
		t.Errorf("name = %#v, want nil", row["name"])
	}
	if row["id"] != int64(0) {
		t.Errorf("id = %#v, want int64(0)", row["id"])
	}
}

func TestRowsFromRecordColumnSubset(t *testing.T) {
	sc := testSchema(nil)
	rec := buildRecord(t, sc, 0, 2)
	defer rec.Release()

	rows := rowsFromRecord(rec, []int{2})
	for i, row := range rows {
		if len(row) != 1 {
			t.Fatalf("rows[%d] has %d keys, want 1", i, len(row))
		}
		if _, ok := row["score"]; !ok {
			t.Errorf("rows[%d] missing score: %v", i, row)
		}
	}
}
