package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Row は検索結果の1件。IDはテーブルのキーで、文書本体には入らない。
type Row[T any] struct {
	ID  int
	Rec T
}

// Table は開いているTxに紐付いた型付きテーブル。
type Table[T any] struct {
	tx   *Tx
	name string
}

func TableOf[T any](tx *Tx, name string) Table[T] {
	return Table[T]{tx: tx, name: name}
}

// Insert は次のIDを払い出して文書を保存する。IDは削除後も再利用しない。
func (t Table[T]) Insert(rec T) (int, error) {
	if !t.tx.writable {
		return 0, ErrReadOnly
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("store: encode %s: %w", t.name, err)
	}

	tbl := t.tx.table(t.name, true)
	id := tbl.NextID
	tbl.NextID++
	tbl.Docs[id] = raw
	return id, nil
}

func (t Table[T]) Get(id int) (T, error) {
	var zero T
	tbl := t.tx.table(t.name, false)
	if tbl == nil {
		return zero, ErrNotFound
	}
	raw, ok := tbl.Docs[id]
	if !ok {
		return zero, ErrNotFound
	}
	return decodeStrict[T](t.name, raw)
}

// Search は条件に合う文書を挿入順（ID昇順。IDは再利用しないので安定）で返す。
// matchがnilなら全件。
func (t Table[T]) Search(match func(rec T) bool) ([]Row[T], error) {
	tbl := t.tx.table(t.name, false)
	if tbl == nil {
		return nil, nil
	}

	ids := make([]int, 0, len(tbl.Docs))
	for id := range tbl.Docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var rows []Row[T]
	for _, id := range ids {
		rec, err := decodeStrict[T](t.name, tbl.Docs[id])
		if err != nil {
			return nil, err
		}
		if match != nil && !match(rec) {
			continue
		}
		rows = append(rows, Row[T]{ID: id, Rec: rec})
	}
	return rows, nil
}

// Update は既存文書を読み出してfnで書き換え、保存し直す。
func (t Table[T]) Update(id int, fn func(rec *T)) (T, error) {
	var zero T
	if !t.tx.writable {
		return zero, ErrReadOnly
	}
	tbl := t.tx.table(t.name, false)
	if tbl == nil {
		return zero, ErrNotFound
	}
	raw, ok := tbl.Docs[id]
	if !ok {
		return zero, ErrNotFound
	}

	rec, err := decodeStrict[T](t.name, raw)
	if err != nil {
		return zero, err
	}
	fn(&rec)

	next, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("store: encode %s: %w", t.name, err)
	}
	tbl.Docs[id] = next
	return rec, nil
}

// Delete は文書を消す。既に無ければErrNotFound（2回目の削除はエラー）。
func (t Table[T]) Delete(id int) error {
	if !t.tx.writable {
		return ErrReadOnly
	}
	tbl := t.tx.table(t.name, false)
	if tbl == nil {
		return ErrNotFound
	}
	if _, ok := tbl.Docs[id]; !ok {
		return ErrNotFound
	}
	delete(tbl.Docs, id)
	return nil
}

// 未知フィールドは読み取り時点で拒否する（形を信じない）。
func decodeStrict[T any](name string, raw json.RawMessage) (T, error) {
	var rec T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return rec, fmt.Errorf("store: decode %s: %w", name, err)
	}
	return rec, nil
}
