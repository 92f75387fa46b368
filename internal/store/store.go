// Package store は単一JSONファイルを下敷きにしたドキュメントストア。
// テーブルごとに連番ID（1始まり・削除後も再利用しない）を払い出し、
// 変更は呼び出しが返る前に必ずファイルへ書き切る。
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ドキュメントが存在しない
var ErrNotFound = errors.New("store: not found")

// 読み取り専用セクションでの書き込み
var ErrReadOnly = errors.New("store: read-only section")

// 1テーブル分のディスクイメージ。
// Docsのキーが文書ID。IDは文書本体には含めない。
type table struct {
	NextID int                     `json:"next_id"`
	Docs   map[int]json.RawMessage `json:"docs"`
}

// Store はプロセス内で1つだけ開く想定。
// 単一のRWMutexで読み書きを直列化する（プロセス間の共有は対象外）。
type Store struct {
	mu     sync.RWMutex
	path   string
	tables map[string]*table
}

// Open はファイルを読み込む。無ければ空のストアを作る。
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		tables: map[string]*table{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.tables); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", path, err)
		}
	}
	for _, tbl := range s.tables {
		if tbl.Docs == nil {
			tbl.Docs = map[int]json.RawMessage{}
		}
		if tbl.NextID < 1 {
			tbl.NextID = 1
		}
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Tx は開いているクリティカルセクションのハンドル。
// View/Updateのコールバック内でのみ有効。
type Tx struct {
	s        *Store
	writable bool
}

// View は読み取りセクションを開く。読み取り同士は並行できる。
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update は書き込みセクションを開く。
// fnが失敗したらメモリ上の変更を巻き戻し、成功したら全体をフラッシュする。
// check-then-act（一意チェック、数量マージ、一括確定）はこの中で行うこと。
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.cloneTables()

	if err := fn(&Tx{s: s, writable: true}); err != nil {
		s.tables = snapshot
		return err
	}

	if err := s.flush(); err != nil {
		s.tables = snapshot
		return fmt.Errorf("store: flush: %w", err)
	}
	return nil
}

// テーブルを取得。書き込みセクションでは無ければ作る。
func (tx *Tx) table(name string, create bool) *table {
	tbl, ok := tx.s.tables[name]
	if !ok && create {
		tbl = &table{NextID: 1, Docs: map[int]json.RawMessage{}}
		tx.s.tables[name] = tbl
	}
	return tbl
}

// RawMessageは差し替えのみで書き換えないので、mapの浅いコピーで巻き戻せる。
func (s *Store) cloneTables() map[string]*table {
	out := make(map[string]*table, len(s.tables))
	for name, tbl := range s.tables {
		docs := make(map[int]json.RawMessage, len(tbl.Docs))
		for id, doc := range tbl.Docs {
			docs[id] = doc
		}
		out[name] = &table{NextID: tbl.NextID, Docs: docs}
	}
	return out
}

// 全テーブルを一時ファイルへ書いてrenameで差し替える。
// rename前にクラッシュしても旧ファイルはそのまま残る。
func (s *Store) flush() error {
	raw, err := json.Marshal(s.tables)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
