package scene

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/idx"
)

// Transaction is an atomic batch of block additions and removals (spec.md
// §4.5.2): a pair of sets, built incrementally by AddBlock/RemoveBlock and
// applied in one call to Scene.Modify.
type Transaction struct {
	newBlocks     map[BlockIndex]BlockConstructionInfo
	deletedBlocks map[BlockIndex]struct{}
}

// NewTransaction returns an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{
		newBlocks:     make(map[BlockIndex]BlockConstructionInfo),
		deletedBlocks: make(map[BlockIndex]struct{}),
	}
}

// AddBlock stages a new block. It fails with gustaveerr.ErrDuplicateInsertion
// if this transaction already stages a block at the same index (spec.md
// §4.5.2); it does not check against the scene itself, that is Modify's job.
// It fails with gustaveerr.ErrInvalidArgument if info describes a physically
// invalid block: non-positive mass, or a maxStress with a non-positive
// component (spec.md §3.1, §7: "Mass and stress are immutable after
// creation", checked once here rather than re-derived on every query).
func (tx *Transaction) AddBlock(info BlockConstructionInfo) error {
	if info.Mass <= 0 {
		return fmt.Errorf("%w: block %+v mass must be > 0, got %v", gustaveerr.ErrInvalidArgument, info.Index, info.Mass)
	}
	if err := info.MaxStress.Validate(); err != nil {
		return fmt.Errorf("%w: block %+v: %v", gustaveerr.ErrInvalidArgument, info.Index, err)
	}
	if _, exists := tx.newBlocks[info.Index]; exists {
		return fmt.Errorf("%w: block %+v already staged in this transaction", gustaveerr.ErrDuplicateInsertion, info.Index)
	}
	tx.newBlocks[info.Index] = info
	return nil
}

// RemoveBlock stages a block for removal. Idempotent: removing the same
// index twice has the same effect as once, since the staging set is a set
// (spec.md §4.5.2).
func (tx *Transaction) RemoveBlock(index BlockIndex) {
	tx.deletedBlocks[index] = struct{}{}
}

// TransactionResult reports the structural effect of a successful Modify
// call (spec.md §4.5.3): NewStructures is the contiguous range of freshly
// allocated ids, DeletedStructures lists every id retired by the transaction.
type TransactionResult struct {
	NewStructures     idx.Range
	DeletedStructures []StructureIndex
}
