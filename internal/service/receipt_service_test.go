package service

import (
	"context"
	"errors"
	"testing"
)

func TestBalanceOfUnknownHolderIsZero(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := NewReceiptService(repo, testLogger())

	balance, err := svc.BalanceOf(context.Background(), "0xnobody", 1)
	if err != nil {
		t.Fatalf("BalanceOf returned error: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestBalanceOfBatchPreservesOrder(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.balances[receiptKey("0xa", 1)] = 2
	repo.balances[receiptKey("0xb", 2)] = 1
	svc := NewReceiptService(repo, testLogger())

	balances, err := svc.BalanceOfBatch(context.Background(), []string{"0xb", "0xa", "0xc"}, []int64{2, 1, 1})
	if err != nil {
		t.Fatalf("BalanceOfBatch returned error: %v", err)
	}
	want := []int64{1, 2, 0}
	for i := range want {
		if balances[i] != want[i] {
			t.Errorf("balances[%d] = %d, want %d", i, balances[i], want[i])
		}
	}
}

func TestBalanceOfBatchLengthMismatch(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo(), testLogger())

	if _, err := svc.BalanceOfBatch(context.Background(), []string{"0xa", "0xb"}, []int64{1}); !errors.Is(err, ErrBatchLengthMismatch) {
		t.Fatalf("BalanceOfBatch error = %v, want ErrBatchLengthMismatch", err)
	}
}

func TestBalanceOfBatchEmptyInput(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo(), testLogger())

	balances, err := svc.BalanceOfBatch(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("BalanceOfBatch returned error: %v", err)
	}
	if len(balances) != 0 {
		t.Errorf("got %d balances for empty input, want 0", len(balances))
	}
}

func TestTransferAlwaysRejected(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.balances[receiptKey("0xholder", 1)] = 1
	svc := NewReceiptService(repo, testLogger())

	// Even the holder moving their own receipt is rejected.
	if err := svc.Transfer(context.Background(), "0xholder", "0xholder", "0xfriend", 1, 1); !errors.Is(err, ErrTransferNotAllowed) {
		t.Fatalf("Transfer error = %v, want ErrTransferNotAllowed", err)
	}

	if balance, _ := svc.BalanceOf(context.Background(), "0xholder", 1); balance != 1 {
		t.Errorf("holder balance = %d after rejected transfer, want 1", balance)
	}
	if balance, _ := svc.BalanceOf(context.Background(), "0xfriend", 1); balance != 0 {
		t.Errorf("recipient balance = %d after rejected transfer, want 0", balance)
	}
}

func TestBatchTransferAlwaysRejected(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo(), testLogger())

	err := svc.BatchTransfer(context.Background(), "0xholder", "0xholder", "0xfriend", []int64{1, 2}, []int64{1, 1})
	if !errors.Is(err, ErrTransferNotAllowed) {
		t.Fatalf("BatchTransfer error = %v, want ErrTransferNotAllowed", err)
	}
}
