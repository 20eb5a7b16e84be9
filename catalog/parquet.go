package catalog

import (
	"fmt"
	"math"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// parquetParallelism is the number of goroutines parquet-go uses to
// marshal/unmarshal column chunks.
const parquetParallelism int64 = 4

// itemRow is the on-disk schema: one row per item.
type itemRow struct {
	ID      int64 `parquet:"name=id, type=INT64"`
	Weight  int64 `parquet:"name=weight, type=INT64"`
	Benefit int64 `parquet:"name=benefit, type=INT64"`
}

// LoadParquet reads a catalog written by WriteParquet (or any file with
// INT64 columns id, weight, benefit).
//
// Errors: ErrMalformedInput for ids outside the uint32 range; any error
// returned by New; I/O errors from parquet-go as is.
func LoadParquet(path string) (*Catalog, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(itemRow), parquetParallelism)
	if err != nil {
		return nil, fmt.Errorf("catalog: parquet reader %s: %w", path, err)
	}
	defer pr.ReadStop()

	var n = int(pr.GetNumRows())
	var rows = make([]itemRow, n)
	if n > 0 {
		if err = pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
	}

	var items = make([]Item, n)
	for i, row := range rows {
		if row.ID < 0 || row.ID > math.MaxUint32 {
			return nil, fmt.Errorf("catalog: %s row %d id=%d: %w", path, i, row.ID, ErrMalformedInput)
		}
		items[i] = Item{ID: uint32(row.ID), Weight: row.Weight, Benefit: row.Benefit}
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteParquet writes c to path in id order.
func WriteParquet(path string, c *Catalog) error {
	if c == nil {
		return ErrNilCatalog
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("catalog: create %s: %w", path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(itemRow), parquetParallelism)
	if err != nil {
		return fmt.Errorf("catalog: parquet writer %s: %w", path, err)
	}
	for _, it := range c.items {
		if err = pw.Write(itemRow{ID: int64(it.ID), Weight: it.Weight, Benefit: it.Benefit}); err != nil {
			return fmt.Errorf("catalog: write %s: %w", path, err)
		}
	}
	if err = pw.WriteStop(); err != nil {
		return fmt.Errorf("catalog: finalize %s: %w", path, err)
	}

	return nil
}
