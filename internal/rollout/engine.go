// Package rollout decides which workspaces have a feature flag enabled.
//
// The percentage path assigns every (flag, workspace) pair a stable bucket in
// [0,100) and enables the pair iff bucket < target. Because the bucket is a
// pure function of the two identifiers, raising the percentage enables a
// superset of the previously enabled workspaces and lowering it disables a
// subset; membership never scrambles between runs.
package rollout

import (
	"context"
	"fmt"
	"hash/fnv"

	"feature-flag-backend/internal/database/models"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=engine.go -destination=../mocks/rollout_mocks.go -package=mocks

// ExplicitResult carries the enabled-count transition of an explicit
// workspace-targeting update, for audit shaping by the caller.
type ExplicitResult struct {
	OldEnabledCount int64
	NewEnabledCount int64
}

// EngineInterface defines the rollout engine operations used by the service layer
type EngineInterface interface {
	Apply(ctx context.Context, flag *models.FeatureFlag, targetPercentage int) error
	SetExplicit(ctx context.Context, flag *models.FeatureFlag, workspaceIDs []uuid.UUID, enabled bool) (*ExplicitResult, error)
}

// Engine flips association rows for a flag. It never creates or deletes rows;
// provisioning owns row lifecycle.
type Engine struct {
	associations repository.AssociationRepositoryInterface
	workspaces   repository.WorkspaceRepositoryInterface
}

// Ensure Engine implements EngineInterface
var _ EngineInterface = (*Engine)(nil)

// NewEngine creates a new rollout engine
func NewEngine(associations repository.AssociationRepositoryInterface, workspaces repository.WorkspaceRepositoryInterface) *Engine {
	return &Engine{
		associations: associations,
		workspaces:   workspaces,
	}
}

// Bucket computes the stable bucket in [0,100) for a (flag, workspace) pair.
// FNV-1a over the concatenated id strings; no per-call randomness or clock
// input, so the same pair always lands in the same bucket across processes.
func Bucket(flagID, workspaceID uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(flagID.String() + workspaceID.String()))
	return int(h.Sum32() % 100)
}

// Apply re-derives the enabled set for the flag at the target percentage.
//
// Every candidate row is first reset to disabled, then the target is applied:
// 0 leaves everything off, 100 turns everything on, and 1-99 enables the rows
// whose bucket falls under the target. The reset always runs before the
// recompute, even when the percentage decreases; a row enabled under the old
// percentage is never sticky. When the flag's region scope is restricted, rows
// for workspaces outside the scope are left untouched.
func (e *Engine) Apply(ctx context.Context, flag *models.FeatureFlag, targetPercentage int) error {
	if targetPercentage < 0 || targetPercentage > 100 {
		return apperrors.NewValidationError("rollout_percentage", "must be between 0 and 100")
	}

	candidates, err := e.candidateAssociations(ctx, flag)
	if err != nil {
		return fmt.Errorf("failed to load associations: %w", err)
	}
	if len(candidates) == 0 {
		// Nothing associated yet; not an error.
		return nil
	}

	allIDs := make([]uuid.UUID, len(candidates))
	for i, a := range candidates {
		allIDs[i] = a.ID
	}

	// Reset before recompute so no stale enablement survives a decrease.
	if err := e.associations.SetEnabledByIDs(ctx, allIDs, false); err != nil {
		return fmt.Errorf("failed to reset associations: %w", err)
	}

	switch {
	case targetPercentage == 0:
		return nil
	case targetPercentage == 100:
		return e.associations.SetEnabledByIDs(ctx, allIDs, true)
	}

	var enableIDs []uuid.UUID
	for _, a := range candidates {
		if Bucket(a.FeatureFlagID, a.WorkspaceID) < targetPercentage {
			enableIDs = append(enableIDs, a.ID)
		}
	}
	if len(enableIDs) == 0 {
		return nil
	}
	return e.associations.SetEnabledByIDs(ctx, enableIDs, true)
}

// SetExplicit force-sets the enabled state of the flag for an explicit list of
// workspaces, independent of percentage bucketing. Every workspace id must
// exist and the (flag, workspace) association rows must already be present;
// this path never fabricates rows.
func (e *Engine) SetExplicit(ctx context.Context, flag *models.FeatureFlag, workspaceIDs []uuid.UUID, enabled bool) (*ExplicitResult, error) {
	if len(workspaceIDs) == 0 {
		return nil, apperrors.NewInvalidArgumentError("no workspace ids provided")
	}

	workspaces, err := e.workspaces.GetByIDs(ctx, workspaceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}
	if len(workspaces) != len(workspaceIDs) {
		missing := missingIDs(workspaceIDs, workspaces)
		return nil, fmt.Errorf("%w: missing ids %v", apperrors.ErrWorkspaceNotFound, missing)
	}

	associations, err := e.associations.GetByFlagAndWorkspaces(ctx, flag.ID, workspaceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load associations: %w", err)
	}
	// Every requested workspace must already have a row; a partial match would
	// otherwise update some workspaces and silently skip the rest.
	if len(associations) != len(workspaceIDs) {
		if len(associations) == 0 {
			return nil, apperrors.ErrNoAssociationsFound
		}
		return nil, fmt.Errorf("%w: no rows for workspace ids %v",
			apperrors.ErrNoAssociationsFound, workspaceIDsWithoutRows(workspaceIDs, associations))
	}

	oldCount, err := e.associations.CountEnabledByFlag(ctx, flag.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enabled associations: %w", err)
	}

	ids := make([]uuid.UUID, len(associations))
	for i, a := range associations {
		ids[i] = a.ID
	}
	if err := e.associations.SetEnabledByIDs(ctx, ids, enabled); err != nil {
		return nil, fmt.Errorf("failed to update associations: %w", err)
	}

	newCount, err := e.associations.CountEnabledByFlag(ctx, flag.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enabled associations: %w", err)
	}

	return &ExplicitResult{
		OldEnabledCount: oldCount,
		NewEnabledCount: newCount,
	}, nil
}

func (e *Engine) candidateAssociations(ctx context.Context, flag *models.FeatureFlag) ([]models.WorkspaceFeatureFlagAssociation, error) {
	if scope := flag.RegionScope(); scope != nil {
		return e.associations.GetByFlagInRegions(ctx, flag.ID, scope)
	}
	return e.associations.GetByFlag(ctx, flag.ID)
}

func workspaceIDsWithoutRows(requested []uuid.UUID, rows []models.WorkspaceFeatureFlagAssociation) []uuid.UUID {
	covered := make(map[uuid.UUID]struct{}, len(rows))
	for _, a := range rows {
		covered[a.WorkspaceID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := covered[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func missingIDs(requested []uuid.UUID, found []models.Workspace) []uuid.UUID {
	present := make(map[uuid.UUID]struct{}, len(found))
	for _, w := range found {
		present[w.ID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
