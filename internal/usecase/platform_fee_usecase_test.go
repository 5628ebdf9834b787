package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobmarket_billing/internal/domain/entities"
	mock_interfaces "jobmarket_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newFeeUseCase(repo *mock_interfaces.MockIPlatformFeeRepository) *PlatformFeeUseCase {
	uc := NewPlatformFeeUseCase(repo, DefaultFeePolicy())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestPlatformFeeUseCase_CreateFee(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewPlatformFeeUseCase(nil, DefaultFeePolicy())
		if _, err := uc.CreateFee(context.Background(), CreateFeeCommand{JobID: "j1", PaymentOption: entities.PaymentOptionNow}); !errors.Is(err, ErrInvalidEmployerID) {
			t.Fatalf("expected ErrInvalidEmployerID, got %v", err)
		}
		if _, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", PaymentOption: entities.PaymentOptionNow}); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
		if _, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", JobID: "j1", PaymentOption: "soon"}); !errors.Is(err, ErrInvalidPaymentOption) {
			t.Fatalf("expected ErrInvalidPaymentOption, got %v", err)
		}
		if _, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", JobID: "j1", PaymentOption: entities.PaymentOptionNow}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("pay now creates unpaid fee from job payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PlatformFee{})).DoAndReturn(
			func(_ context.Context, f entities.PlatformFee) (entities.PlatformFee, error) {
				if f.ID == "" || f.EmployerID != "e1" || f.JobID != "j1" || f.Amount != 50 {
					t.Fatalf("unexpected fee: %+v", f)
				}
				if f.Status != entities.FeeStatusUnpaid || f.PaymentOption != entities.PaymentOptionNow {
					t.Fatalf("expected unpaid pay-now fee, got %+v", f)
				}
				if !f.CreatedAt.Equal(fixedNow) || !f.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps")
				}
				return f, nil
			},
		)

		fee, err := uc.CreateFee(context.Background(), CreateFeeCommand{
			EmployerID: " e1 ", JobID: "j1", JobTitle: "Painter", JobPayment: 1000, PaymentOption: entities.PaymentOptionNow,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !fee.NeedsPayment() {
			t.Fatalf("pay-now fee must need payment")
		}
	})

	t.Run("pay later stays pending until job completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.PlatformFee) (entities.PlatformFee, error) { return f, nil },
		)

		fee, err := uc.CreateFee(context.Background(), CreateFeeCommand{
			EmployerID: "e1", JobID: "j1", Amount: 50, PaymentOption: entities.PaymentOptionLater,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if fee.Status != entities.FeeStatusPending || fee.NeedsPayment() {
			t.Fatalf("expected pending fee without payment need, got %+v", fee)
		}
	})

	t.Run("one fee per job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return([]entities.PlatformFee{{ID: "f0", JobID: "j1"}}, nil)

		_, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", JobID: "j1", Amount: 50, PaymentOption: entities.PaymentOptionNow})
		if !errors.Is(err, ErrFeeAlreadyExists) {
			t.Fatalf("expected ErrFeeAlreadyExists, got %v", err)
		}
	})

	t.Run("paid fee still blocks a second fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return([]entities.PlatformFee{{ID: "f0", JobID: "j1", Status: entities.FeeStatusPaid}}, nil)

		_, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", JobID: "j1", Amount: 50, PaymentOption: entities.PaymentOptionLater})
		if !errors.Is(err, ErrFeeAlreadyExists) {
			t.Fatalf("expected ErrFeeAlreadyExists, got %v", err)
		}
	})

	t.Run("storage error is ledger unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PlatformFee{}, errors.New("db"))

		_, err := uc.CreateFee(context.Background(), CreateFeeCommand{EmployerID: "e1", JobID: "j1", Amount: 50, PaymentOption: entities.PaymentOptionNow})
		if !errors.Is(err, ErrLedgerUnavailable) {
			t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
		}
	})
}

func TestPlatformFeeUseCase_GetFee(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{}, nil)

		if _, err := uc.GetFeeByID(context.Background(), "f1"); !errors.Is(err, ErrFeeNotFound) {
			t.Fatalf("expected ErrFeeNotFound, got %v", err)
		}
	})

	t.Run("display falls back to hint when ledger is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{}, errors.New("timeout"))

		view, err := uc.GetFeeForDisplay(context.Background(), "f1", FeeHint{JobTitle: "Painter", Amount: 50})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !view.Degraded || view.Fee.Amount != 50 || view.Fee.ID != "f1" {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("display without hint surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{}, errors.New("timeout"))

		if _, err := uc.GetFeeForDisplay(context.Background(), "f1", FeeHint{}); !errors.Is(err, ErrLedgerUnavailable) {
			t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
		}
	})

	t.Run("display does not hide a missing fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{}, nil)

		if _, err := uc.GetFeeForDisplay(context.Background(), "f1", FeeHint{Amount: 50}); !errors.Is(err, ErrFeeNotFound) {
			t.Fatalf("expected ErrFeeNotFound, got %v", err)
		}
	})
}

func TestPlatformFeeUseCase_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
	uc := newFeeUseCase(repo)

	fees := []entities.PlatformFee{
		{ID: "new", Status: entities.FeeStatusUnpaid, CreatedAt: fixedNow},
		{ID: "paid", Status: entities.FeeStatusPaid, CreatedAt: fixedNow.Add(-time.Hour)},
		{ID: "old", Status: entities.FeeStatusPending, CreatedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "claimed", Status: entities.FeeStatusPendingVerification, CreatedAt: fixedNow.Add(-3 * time.Hour)},
	}
	repo.EXPECT().ListByEmployerID(gomock.Any(), "e1").Return(fees, nil).Times(2)

	pending, err := uc.GetPendingFees(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "old" || pending[1].ID != "new" {
		t.Fatalf("expected open fees oldest first, got %+v", pending)
	}

	all, err := uc.GetAllFees(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 4 || all[0].ID != "new" || all[3].ID != "claimed" {
		t.Fatalf("expected all fees newest first, got %+v", all)
	}

	if _, err := uc.GetAllFees(context.Background(), " "); !errors.Is(err, ErrInvalidEmployerID) {
		t.Fatalf("expected ErrInvalidEmployerID, got %v", err)
	}
}

func TestPlatformFeeUseCase_UpdateFeeStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewPlatformFeeUseCase(nil, DefaultFeePolicy())
		if _, err := uc.UpdateFeeStatus(context.Background(), "f1", entities.FeeStatusPatch{Status: "refunded"}); !errors.Is(err, ErrInvalidFeeStatus) {
			t.Fatalf("expected ErrInvalidFeeStatus, got %v", err)
		}
	})

	t.Run("paid is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPaid}, nil)

		_, err := uc.UpdateFeeStatus(context.Background(), "f1", entities.FeeStatusPatch{Status: entities.FeeStatusUnpaid})
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("paid gets a timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusUnpaid}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusUnpaid, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.FeeStatus, p entities.FeeStatusPatch) (entities.PlatformFee, error) {
				if p.PaidAt == nil || !p.PaidAt.Equal(fixedNow) {
					t.Fatalf("expected paid_at, got %+v", p)
				}
				return entities.PlatformFee{ID: id, Status: p.Status, PaidAt: p.PaidAt}, nil
			},
		)

		fee, err := uc.UpdateFeeStatus(context.Background(), "f1", entities.FeeStatusPatch{Status: entities.FeeStatusPaid})
		if err != nil || fee.Status != entities.FeeStatusPaid {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusPending, gomock.Any()).Return(entities.PlatformFee{}, nil)

		_, err := uc.UpdateFeeStatus(context.Background(), "f1", entities.FeeStatusPatch{Status: entities.FeeStatusUnpaid})
		if !errors.Is(err, ErrFeeConflict) {
			t.Fatalf("expected ErrFeeConflict, got %v", err)
		}
	})
}

func TestPlatformFeeUseCase_MarkFeePaid(t *testing.T) {
	receipt := entities.PaymentReceipt{
		Transaction: entities.GatewayTransaction{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"},
	}

	t.Run("marks unpaid fee paid with transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusUnpaid}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusUnpaid, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.FeeStatus, p entities.FeeStatusPatch) (entities.PlatformFee, error) {
				if p.Status != entities.FeeStatusPaid || p.PaymentMethod != entities.PaymentMethodOnline {
					t.Fatalf("unexpected patch: %+v", p)
				}
				if p.Transaction == nil || p.Transaction.PaymentID != "pay_1" || p.PaidAt == nil {
					t.Fatalf("expected transaction and paid_at: %+v", p)
				}
				return entities.PlatformFee{ID: id, Status: p.Status, PaymentMethod: p.PaymentMethod, Transaction: p.Transaction}, nil
			},
		)

		fee, err := uc.MarkFeePaid(context.Background(), "f1", receipt)
		if err != nil || fee.Status != entities.FeeStatusPaid {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		paid := entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPaid, Transaction: &entities.GatewayTransaction{PaymentID: "pay_1"}}
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(paid, nil).Times(2)

		for i := 0; i < 2; i++ {
			fee, err := uc.MarkFeePaid(context.Background(), "f1", receipt)
			if err != nil || fee.Status != entities.FeeStatusPaid {
				t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
			}
		}
	})

	t.Run("conflict resolved when winner paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusUnpaid}, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusUnpaid, gomock.Any()).Return(entities.PlatformFee{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPaid}, nil),
		)

		fee, err := uc.MarkFeePaid(context.Background(), "f1", receipt)
		if err != nil || fee.Status != entities.FeeStatusPaid {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})
}

func TestPlatformFeeUseCase_CashFlow(t *testing.T) {
	t.Run("claim moves open fee to pending verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusUnpaid}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusUnpaid, entities.FeeStatusPatch{
			Status: entities.FeeStatusPendingVerification, PaymentMethod: entities.PaymentMethodCash,
		}).Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPendingVerification}, nil)

		fee, err := uc.ClaimCashPayment(context.Background(), "f1")
		if err != nil || fee.Status != entities.FeeStatusPendingVerification {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})

	t.Run("claim on paid fee rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPaid}, nil)

		if _, err := uc.ClaimCashPayment(context.Background(), "f1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("rejected claim reopens fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPendingVerification}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusPendingVerification, entities.FeeStatusPatch{Status: entities.FeeStatusUnpaid}).
			Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusUnpaid}, nil)

		fee, err := uc.VerifyCashPayment(context.Background(), "f1", false)
		if err != nil || fee.Status != entities.FeeStatusUnpaid {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})

	t.Run("approved claim pays fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
		uc := newFeeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.PlatformFee{ID: "f1", Status: entities.FeeStatusPendingVerification}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusPendingVerification, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.FeeStatus, p entities.FeeStatusPatch) (entities.PlatformFee, error) {
				if p.Status != entities.FeeStatusPaid || p.PaymentMethod != entities.PaymentMethodCash || p.PaidAt == nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.PlatformFee{ID: id, Status: p.Status}, nil
			},
		)

		fee, err := uc.VerifyCashPayment(context.Background(), "f1", true)
		if err != nil || fee.Status != entities.FeeStatusPaid {
			t.Fatalf("unexpected result fee=%+v err=%v", fee, err)
		}
	})
}

func TestPlatformFeeUseCase_MarkJobFeesCollectible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPlatformFeeRepository(ctrl)
	uc := newFeeUseCase(repo)

	repo.EXPECT().ListByJobID(gomock.Any(), "j1").Return([]entities.PlatformFee{
		{ID: "f1", JobID: "j1", Status: entities.FeeStatusPending, PaymentOption: entities.PaymentOptionLater},
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "f1", entities.FeeStatusPending, gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, _ entities.FeeStatus, p entities.FeeStatusPatch) (entities.PlatformFee, error) {
			if p.Status != entities.FeeStatusUnpaid || p.JobCompleted == nil || !*p.JobCompleted {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return entities.PlatformFee{ID: id, Status: p.Status, JobCompleted: true, PaymentOption: entities.PaymentOptionLater}, nil
		},
	)

	fees, err := uc.MarkJobFeesCollectible(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fees) != 1 || !fees[0].NeedsPayment() {
		t.Fatalf("expected collectible fee, got %+v", fees)
	}
}
