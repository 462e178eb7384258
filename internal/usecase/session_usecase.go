package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShopCredential is one entry of the closed login allow-list.
type ShopCredential struct {
	ShopID   string
	Secret   string
	FirmName string
}

// DefaultShopCredentials are the only shops allowed to sign in.
var DefaultShopCredentials = []ShopCredential{
	{ShopID: "Nihalelectronics", Secret: "Nihalelectronics@2026", FirmName: "Nihal Electronics"},
	{ShopID: "Yashelectronics", Secret: "Yashelectronics@2026", FirmName: "Yash Electronics"},
}

const DefaultSessionTTL = 12 * time.Hour

// ISessionUseCase gates every other operation behind a login.
//
// A successful login creates the session workspace and fills it from the
// backend; logout and expiry drop it again without touching backend data.
type ISessionUseCase interface {
	Authenticate(ctx context.Context, shopID, secret string) (entities.Session, string, error)
	Resolve(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, session entities.Session) error
	SweepExpired(now time.Time) int
}

type SessionUseCase struct {
	credentials []ShopCredential
	tokens      interfaces.ITokenManager
	workspaces  *WorkspaceRegistry
	jobsRepo    interfaces.IRepairJobRepository
	stockRepo   interfaces.IStockItemRepository
	ttl         time.Duration
	now         func() time.Time
	logger      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	tokens interfaces.ITokenManager,
	workspaces *WorkspaceRegistry,
	jobsRepo interfaces.IRepairJobRepository,
	stockRepo interfaces.IStockItemRepository,
	ttl time.Duration,
	log *zap.Logger,
) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUseCase{
		credentials: DefaultShopCredentials,
		tokens:      tokens,
		workspaces:  workspaces,
		jobsRepo:    jobsRepo,
		stockRepo:   stockRepo,
		ttl:         ttl,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger.Named(log, "usecase.session"),
		sessions:    make(map[string]entities.Session),
	}
}

func (u *SessionUseCase) Authenticate(ctx context.Context, shopID, secret string) (entities.Session, string, error) {
	cred, ok := u.match(strings.TrimSpace(shopID), strings.TrimSpace(secret))
	if !ok {
		u.logger.Info("login rejected", zap.String("shop_id", strings.TrimSpace(shopID)))
		return entities.Session{}, "", ErrInvalidCredentials
	}

	now := u.now()
	session := entities.Session{
		ID:           uuid.NewString(),
		FirmID:       cred.ShopID,
		FirmName:     cred.FirmName,
		PartitionKey: cred.ShopID,
		IssuedAt:     now,
		ExpiresAt:    now.Add(u.ttl),
	}

	token, err := u.tokens.Issue(session.ID, session.FirmID, session.ExpiresAt)
	if err != nil {
		return entities.Session{}, "", err
	}

	ws := u.workspaces.Open(session.ID)
	u.load(ctx, session, ws)

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()

	u.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("firm_id", session.FirmID),
	)
	return session, token, nil
}

// match compares every allow-list entry in constant time.
func (u *SessionUseCase) match(shopID, secret string) (ShopCredential, bool) {
	var found ShopCredential
	ok := false
	for _, c := range u.credentials {
		idEq := subtle.ConstantTimeCompare([]byte(shopID), []byte(c.ShopID))
		secretEq := subtle.ConstantTimeCompare([]byte(secret), []byte(c.Secret))
		if idEq&secretEq == 1 {
			found = c
			ok = true
		}
	}
	return found, ok
}

// load fills the workspace from the backend. Failures leave that part empty
// and are reported through the inbox; the session stays usable.
func (u *SessionUseCase) load(ctx context.Context, session entities.Session, ws *Workspace) {
	jobs, err := u.jobsRepo.ListByFirm(ctx, session.PartitionKey)
	if err != nil {
		u.reportLoadFailure(session, ws, "repair_job", err)
		jobs = nil
	}
	stock, err := u.stockRepo.ListByFirm(ctx, session.PartitionKey)
	if err != nil {
		u.reportLoadFailure(session, ws, "stock_item", err)
		stock = nil
	}

	ws.mu.Lock()
	ws.jobs = jobs
	ws.stock = stock
	ws.mu.Unlock()
}

func (u *SessionUseCase) reportLoadFailure(session entities.Session, ws *Workspace, entity string, err error) {
	u.logger.Warn("workspace load failed",
		zap.String("session_id", session.ID),
		zap.String("entity", entity),
		zap.Error(err),
	)
	ws.Inbox().Publish(entities.Notification{
		ID:         uuid.NewString(),
		Entity:     entity,
		Operation:  "load",
		Message:    ErrBackend.Error() + ": " + err.Error(),
		OccurredAt: u.now(),
	})
}

func (u *SessionUseCase) Resolve(_ context.Context, token string) (entities.Session, error) {
	sessionID, firmID, err := u.tokens.Validate(token)
	if err != nil {
		return entities.Session{}, ErrUnauthorized
	}

	u.mu.RLock()
	session, ok := u.sessions[sessionID]
	u.mu.RUnlock()
	if !ok || session.FirmID != firmID || session.Expired(u.now()) {
		return entities.Session{}, ErrUnauthorized
	}
	return session, nil
}

func (u *SessionUseCase) Logout(_ context.Context, session entities.Session) error {
	u.mu.Lock()
	_, ok := u.sessions[session.ID]
	delete(u.sessions, session.ID)
	u.mu.Unlock()

	u.workspaces.Drop(session.ID)
	if !ok {
		return ErrUnauthorized
	}
	u.logger.Info("session closed", zap.String("session_id", session.ID))
	return nil
}

// SweepExpired drops every session whose expiry is at or before now and
// returns how many were removed.
func (u *SessionUseCase) SweepExpired(now time.Time) int {
	u.mu.Lock()
	var expired []string
	for id, s := range u.sessions {
		if s.Expired(now) {
			expired = append(expired, id)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, id := range expired {
		u.workspaces.Drop(id)
	}
	if len(expired) > 0 {
		u.logger.Info("expired sessions swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}
