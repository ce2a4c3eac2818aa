package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/domain/repositories"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/utils"
)

// WelcomeEnqueuer accepts best-effort post-approval notifications
type WelcomeEnqueuer interface {
	Enqueue(phone, name string)
}

// ApprovalUsecase advances accounts through the two-tier review chain.
// Each transition is authorized against the actor's role and the
// target's reviewer assignment, applied as one transaction, and leaves
// exactly one audit record.
type ApprovalUsecase struct {
	accountRepo  repositories.AccountRepository
	shopRepo     repositories.ShopRepository
	approvalRepo repositories.ApprovalRepository
	uow          repositories.UnitOfWork
	codeGen      *ShopCodeGenerator
	notifier     WelcomeEnqueuer
}

// NewApprovalUsecase creates a new approval usecase
func NewApprovalUsecase(
	accountRepo repositories.AccountRepository,
	shopRepo repositories.ShopRepository,
	approvalRepo repositories.ApprovalRepository,
	uow repositories.UnitOfWork,
	codeGen *ShopCodeGenerator,
	notifier WelcomeEnqueuer,
) *ApprovalUsecase {
	return &ApprovalUsecase{
		accountRepo:  accountRepo,
		shopRepo:     shopRepo,
		approvalRepo: approvalRepo,
		uow:          uow,
		codeGen:      codeGen,
		notifier:     notifier,
	}
}

// Approve advances the target one review tier
func (u *ApprovalUsecase) Approve(ctx context.Context, actorID, targetID uuid.UUID) (*entities.Account, error) {
	actor, target, err := u.loadParties(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	toStatus, err := u.authorize(ctx, actor, target)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.UpdateStatus(txCtx, target.ID, target.Status, toStatus); err != nil {
			return err
		}

		// Final approval of a shop owner mints the shop code inside the
		// same transaction: exhaustion rolls the transition back.
		if toStatus == entities.StatusApproved && target.Kind == entities.AccountKindShopOwner {
			shop, err := u.shopRepo.GetByOwner(txCtx, target.ID)
			if err != nil {
				return err
			}
			code, err := u.codeGen.Generate(txCtx, ShopCodeMaxAttempts)
			if err != nil {
				return err
			}
			if err := u.shopRepo.AssignCode(txCtx, shop.ID, code); err != nil {
				return err
			}
		}

		return u.approvalRepo.Create(txCtx, &entities.ApprovalRecord{
			AccountID:  target.ID,
			ActorID:    actor.ID,
			Action:     entities.ApprovalActionApproved,
			FromStatus: target.Status,
			ToStatus:   toStatus,
		})
	})
	if err != nil {
		return nil, err
	}

	if toStatus == entities.StatusApproved {
		// Fire-and-forget by design: the welcome message is not part of
		// the transactional contract.
		u.notifier.Enqueue(target.Phone, target.Name)
	}

	logger.Info(ctx, "account transition",
		zap.String("accountId", target.ID.String()),
		zap.String("from", string(target.Status)),
		zap.String("to", string(toStatus)),
		zap.String("actorId", actor.ID.String()),
	)

	target.Status = toStatus
	return target, nil
}

// Reject moves the target to the terminal Rejected state with a
// mandatory reason
func (u *ApprovalUsecase) Reject(ctx context.Context, actorID, targetID uuid.UUID, reason string) (*entities.Account, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.BadRequest("rejection reason is required")
	}

	actor, target, err := u.loadParties(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	// Same tier authorization as approval; only the destination differs.
	if _, err := u.authorize(ctx, actor, target); err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.UpdateStatus(txCtx, target.ID, target.Status, entities.StatusRejected); err != nil {
			return err
		}
		return u.approvalRepo.Create(txCtx, &entities.ApprovalRecord{
			AccountID:  target.ID,
			ActorID:    actor.ID,
			Action:     entities.ApprovalActionRejected,
			FromStatus: target.Status,
			ToStatus:   entities.StatusRejected,
			Reason:     null.StringFrom(reason),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "account rejected",
		zap.String("accountId", target.ID.String()),
		zap.String("from", string(target.Status)),
		zap.String("actorId", actor.ID.String()),
	)

	target.Status = entities.StatusRejected
	return target, nil
}

// ListPending returns the actor's review work queue
func (u *ApprovalUsecase) ListPending(ctx context.Context, actorID uuid.UUID, page, limit int) ([]*entities.Account, *utils.PaginationMeta, error) {
	actor, err := u.accountRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}

	params := utils.GetPaginationParams(page, limit)

	var (
		accounts []*entities.Account
		total    int64
	)
	switch actor.Kind {
	case entities.AccountKindSalesPerson:
		accounts, total, err = u.accountRepo.ListByReviewer(ctx, actor.ID, entities.StatusPendingSalesman, params.Limit, params.CalculateOffset())
	case entities.AccountKindZoneManager:
		if !actor.ZoneID.Valid {
			return nil, nil, domainerrors.Unauthorized("zone manager has no zone assignment")
		}
		zoneID, parseErr := uuid.Parse(actor.ZoneID.String)
		if parseErr != nil {
			return nil, nil, parseErr
		}
		accounts, total, err = u.accountRepo.ListByZone(ctx, zoneID, entities.StatusPendingZoneManager, params.Limit, params.CalculateOffset())
	default:
		return nil, nil, domainerrors.Unauthorized("actor is not a reviewer")
	}
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return accounts, &meta, nil
}

// History returns the audit trail for an account
func (u *ApprovalUsecase) History(ctx context.Context, accountID uuid.UUID) ([]*entities.ApprovalRecord, error) {
	if _, err := u.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.approvalRepo.ListByAccount(ctx, accountID)
}

func (u *ApprovalUsecase) loadParties(ctx context.Context, actorID, targetID uuid.UUID) (actor, target *entities.Account, err error) {
	actor, err = u.accountRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	target, err = u.accountRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return actor, target, nil
}

// authorize decides the destination status for an approval by the
// target's current tier and checks the actor is the reviewer that tier
// demands. Terminal states absorb: nothing moves out of them.
func (u *ApprovalUsecase) authorize(ctx context.Context, actor, target *entities.Account) (entities.RegistrationStatus, error) {
	if target.Status.IsTerminal() {
		return "", domainerrors.NotPending("account review is already finalized")
	}

	switch target.Status {
	case entities.StatusPendingSalesman:
		if actor.Kind != entities.AccountKindSalesPerson ||
			!target.AssignedReviewerID.Valid ||
			target.AssignedReviewerID.String != actor.ID.String() {
			return "", domainerrors.Unauthorized("not the assigned reviewer for this account")
		}
		return entities.StatusPendingZoneManager, nil

	case entities.StatusPendingZoneManager:
		if actor.Kind != entities.AccountKindZoneManager {
			return "", domainerrors.Unauthorized("second-tier review requires a zone manager")
		}
		if !target.AssignedReviewerID.Valid {
			return "", domainerrors.Unauthorized("account has no reviewer assignment")
		}
		reviewerID, err := uuid.Parse(target.AssignedReviewerID.String)
		if err != nil {
			return "", err
		}
		reviewer, err := u.accountRepo.GetByID(ctx, reviewerID)
		if err != nil {
			return "", err
		}
		if !actor.ZoneID.Valid || !reviewer.ZoneID.Valid || actor.ZoneID.String != reviewer.ZoneID.String {
			return "", domainerrors.Unauthorized("account belongs to a different zone")
		}
		return entities.StatusApproved, nil

	default:
		return "", domainerrors.Unauthorized("account is not reviewable")
	}
}
