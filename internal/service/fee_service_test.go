package service

import (
	"context"
	"errors"
	"testing"
)

const operatorAddr = "0xoperator"

func TestSetProtocolFeeRequiresOperator(t *testing.T) {
	repo := &fakeFeeRepo{feeBps: 500}
	svc := NewFeeService(repo, operatorAddr, testLogger())

	if err := svc.SetProtocolFee(context.Background(), "0xstranger", 100); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("SetProtocolFee error = %v, want ErrUnauthorized", err)
	}
	if repo.feeBps != 500 {
		t.Errorf("fee changed to %d despite rejection", repo.feeBps)
	}
}

func TestSetProtocolFeeValidatesRange(t *testing.T) {
	repo := &fakeFeeRepo{feeBps: 500}
	svc := NewFeeService(repo, operatorAddr, testLogger())

	for _, bps := range []int32{-1, 10001, 20000} {
		if err := svc.SetProtocolFee(context.Background(), operatorAddr, bps); !errors.Is(err, ErrInvalidFeeRate) {
			t.Errorf("SetProtocolFee(%d) error = %v, want ErrInvalidFeeRate", bps, err)
		}
	}
	if repo.feeBps != 500 {
		t.Errorf("fee changed to %d despite rejections", repo.feeBps)
	}
}

func TestSetProtocolFeeAcceptsBoundaries(t *testing.T) {
	repo := &fakeFeeRepo{feeBps: 500}
	svc := NewFeeService(repo, operatorAddr, testLogger())

	for _, bps := range []int32{0, 10000, 250} {
		if err := svc.SetProtocolFee(context.Background(), operatorAddr, bps); err != nil {
			t.Fatalf("SetProtocolFee(%d) returned error: %v", bps, err)
		}
		got, err := svc.GetProtocolFee(context.Background())
		if err != nil {
			t.Fatalf("GetProtocolFee returned error: %v", err)
		}
		if got != bps {
			t.Errorf("GetProtocolFee = %d, want %d", got, bps)
		}
	}
}
