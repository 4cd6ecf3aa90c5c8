package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

const (
	phraseAskVoiceCode     = "Please say your four-digit voice code."
	phraseVoiceCodeUnknown = "I couldn't find an account with that voice code. Please try again."
	phraseHello            = "Hello, %s."
	phraseCorrect          = "Correct."
	phraseIncorrect        = "That answer is not correct. Please try again, or say cancel to start over."
	phraseNotHeard         = "I didn't catch that. Please answer the question, or say cancel to start over."
	phraseCancelled        = "Authentication cancelled. Say your voice code when you're ready."
	phraseLockedOut        = "Too many incorrect answers. Please start again with your voice code."
	phraseExpired          = "Your session has expired. Please say your voice code to start again."
	phraseAccountInactive  = "This account is not available right now."
	phraseWelcome          = "Welcome, %s. How can I help you today?"
	phraseWelcomeAnonymous = "Welcome. How can I help you today?"
	phraseListening        = "I'm listening. What would you like to talk about?"
	phraseFarewell         = "Goodbye. You have been logged out."
	phraseApology          = "Sorry, something went wrong. Please try again."
	phraseFallbackQuestion = "Please tell me the answer to your security question number %d."
)

// defaultTurnTimeout bounds a turn when the policy leaves TurnTimeout unset.
const defaultTurnTimeout = 45 * time.Second

// ProtocolDeps are the collaborators of the session protocol.
type ProtocolDeps struct {
	Credentials model.CredentialStore
	Contexts    model.ContextStore
	Sessions    model.SessionStore
	Cipher      model.FactorCipher
	Oracle      model.FactorOracle
	Questions   model.QuestionGenerator
	Engine      model.ConversationalEngine
}

// Policy tunes lifetimes, timeouts and listen hints. TurnTimeout bounds every store and
// oracle call of one utterance together.
type Policy struct {
	SessionTTL          time.Duration
	IdentityTTL         time.Duration
	OracleTimeout       time.Duration
	TurnTimeout         time.Duration
	ListenDefault       time.Duration
	ListenAuthenticated time.Duration
	// MaxFactorAttempts > 0 resets the client to IDLE after that many consecutive
	// rejected answers. Zero leaves retries unbounded.
	MaxFactorAttempts int
}

// DefaultPolicy returns the observed production values.
func DefaultPolicy() Policy {
	return Policy{
		SessionTTL:          model.DefaultSessionTTL,
		IdentityTTL:         model.DefaultSessionTTL,
		OracleTimeout:       15 * time.Second,
		TurnTimeout:         defaultTurnTimeout,
		ListenDefault:       5 * time.Second,
		ListenAuthenticated: 10 * time.Second,
	}
}

// Keywords are the phrases that end an authentication attempt or an authenticated session.
type Keywords struct {
	Cancel []string
	Logout []string
}

// DefaultKeywords covers English and Spanish speakers.
func DefaultKeywords() Keywords {
	return Keywords{
		Cancel: []string{"cancel", "exit", "goodbye", "restart", "abort", "salir", "adios", "reiniciar", "abortar"},
		Logout: []string{"log out", "logout", "exit", "goodbye", "cerrar sesion", "salir", "adios", "hasta luego"},
	}
}

// ProtocolOption customizes a Protocol.
type ProtocolOption func(*Protocol)

// WithClock replaces the wall clock used for identity expiry.
func WithClock(now func() time.Time) ProtocolOption {
	return func(p *Protocol) {
		p.now = now
	}
}

// Protocol is the per-client authentication state machine. It keeps no state between
// calls; everything lives in the session store.
type Protocol struct {
	credentials model.CredentialStore
	contexts    model.ContextStore
	sessions    model.SessionStore
	cipher      model.FactorCipher
	oracle      model.FactorOracle
	questions   model.QuestionGenerator
	engine      model.ConversationalEngine
	policy      Policy
	cancel      keywordSet
	logout      keywordSet
	logger      *logger.Logger
	now         func() time.Time
}

func NewProtocol(deps ProtocolDeps, policy Policy, keywords Keywords, logger *logger.Logger, opts ...ProtocolOption) *Protocol {
	p := &Protocol{
		credentials: deps.Credentials,
		contexts:    deps.Contexts,
		sessions:    deps.Sessions,
		cipher:      deps.Cipher,
		oracle:      deps.Oracle,
		questions:   deps.Questions,
		engine:      deps.Engine,
		policy:      policy,
		cancel:      newKeywordSet(keywords.Cancel),
		logout:      newKeywordSet(keywords.Logout),
		logger:      logger,
		now:         time.Now,
	}
	if p.policy.TurnTimeout <= 0 {
		p.policy.TurnTimeout = defaultTurnTimeout
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type failureKind string

const (
	failureTimeout     failureKind = "timeout"
	failureUnavailable failureKind = "unavailable"
	failureConflict    failureKind = "conflict"
	failureDecrypt     failureKind = "decrypt"
	failureCorrupt     failureKind = "corrupt"
)

// turnError aborts a turn without touching the stored record.
type turnError struct {
	kind failureKind
	err  error
}

func (e *turnError) Error() string { return fmt.Sprintf("%s: %v", e.kind, e.err) }

func (e *turnError) Unwrap() error { return e.err }

func abort(kind failureKind, err error) error {
	return &turnError{kind: kind, err: err}
}

func classify(err error) failureKind {
	var te *turnError
	switch {
	case errors.As(err, &te):
		return te.kind
	case errors.Is(err, context.DeadlineExceeded):
		return failureTimeout
	case errors.Is(err, model.ErrSessionConflict):
		return failureConflict
	case errors.Is(err, model.ErrCorruptSession):
		return failureCorrupt
	default:
		return failureUnavailable
	}
}

type writeOp int

const (
	writeNone writeOp = iota
	writeSave
	writeDelete
)

// turn is the fully computed outcome of one utterance, committed with a single write.
type turn struct {
	text  string
	next  model.ClientSession
	write writeOp
}

func stay(session model.ClientSession, text string) turn {
	return turn{text: text, next: session, write: writeNone}
}

func reset(text string) turn {
	return turn{text: text, next: model.ClientSession{State: model.StateIdle}, write: writeDelete}
}

// HandleInteraction advances the protocol of clientID by one utterance. It never fails:
// collaborator failures produce an apology and leave the stored state untouched.
func (p *Protocol) HandleInteraction(ctx context.Context, clientID, utterance string) model.Reply {
	log := p.logger.With("client_id", clientID)

	ctx, cancel := context.WithTimeout(ctx, p.policy.TurnTimeout)
	defer cancel()

	session, err := p.sessions.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, model.ErrCorruptSession) {
			log.Warn("Protocol: discarding undecodable session", "error", err.Error())
			if err := p.sessions.Delete(ctx, clientID, 0); err != nil {
				return p.fail(log, model.StateIdle, err)
			}
			return p.reply(model.StateIdle, reset(phraseExpired))
		}
		return p.fail(log, model.StateIdle, err)
	}

	prior := session.State

	var t turn
	switch {
	case session.State == model.StateIdle:
		t, err = p.handleIdle(ctx, log, session, utterance)
	case session.State.IsAuthFactor():
		t, err = p.handleFactor(ctx, log, session, utterance)
	case session.State == model.StateAuthenticated:
		t, err = p.handleAuthenticated(ctx, log, session, utterance)
	default:
		log.Warn("Protocol: unknown state in session record", "state", session.State.String())
		t = reset(phraseExpired)
	}
	if err != nil {
		return p.fail(log, prior, err)
	}

	if err := p.commit(ctx, clientID, session, t); err != nil {
		return p.fail(log, prior, err)
	}

	log.Info("Protocol: turn completed",
		"from", prior.String(),
		"to", t.next.State.String())

	return p.reply(prior, t)
}

func (p *Protocol) commit(ctx context.Context, clientID string, current model.ClientSession, t turn) error {
	switch t.write {
	case writeSave:
		t.next.Version = current.Version
		if err := p.sessions.Save(ctx, clientID, t.next, p.policy.SessionTTL); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	case writeDelete:
		if current.Version == 0 {
			return nil
		}
		if err := p.sessions.Delete(ctx, clientID, current.Version); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}
	return nil
}

func (p *Protocol) reply(prior model.State, t turn) model.Reply {
	return model.Reply{
		Text:       t.text,
		State:      t.next.State,
		PriorState: prior,
		ListenFor:  p.listenFor(t.next.State),
	}
}

func (p *Protocol) fail(log *logger.Logger, prior model.State, err error) model.Reply {
	log.Error("Protocol: turn aborted",
		"state", prior.String(),
		"failure", string(classify(err)),
		"error", err.Error())

	return model.Reply{
		Text:       phraseApology,
		State:      prior,
		PriorState: prior,
		ListenFor:  p.listenFor(prior),
	}
}

func (p *Protocol) listenFor(state model.State) time.Duration {
	if state == model.StateAuthenticated {
		return p.policy.ListenAuthenticated
	}
	return p.policy.ListenDefault
}

func (p *Protocol) handleIdle(ctx context.Context, log *logger.Logger, session model.ClientSession, utterance string) (turn, error) {
	code := extractDigits(utterance)
	if len(code) != model.VoiceCodeLength {
		return stay(session, phraseAskVoiceCode), nil
	}

	user, err := p.credentials.FindActiveByVoiceCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Info("Protocol: voice code did not match an active user")
			return stay(session, phraseVoiceCodeUnknown), nil
		}
		return turn{}, fmt.Errorf("failed to find user by voice code: %w", err)
	}

	userID := user.ID
	expiresAt := p.now().Add(p.policy.IdentityTTL)

	configured := user.Configured()
	if len(configured) == 0 {
		log.Info("Protocol: user has no factors, authenticating", "user_id", userID)
		return turn{
			text: welcome(user.Name),
			next: model.ClientSession{
				State:             model.StateAuthenticated,
				CandidateUserID:   &userID,
				IdentityExpiresAt: expiresAt,
			},
			write: writeSave,
		}, nil
	}

	pending := make([]string, 0, len(configured))
	for i, ciphertext := range configured {
		plaintext, err := p.cipher.Decrypt(ciphertext)
		if err != nil {
			return turn{}, abort(failureDecrypt, fmt.Errorf("failed to decrypt factor %d of user %d: %w", i+1, userID, err))
		}
		pending = append(pending, plaintext)
	}

	question := p.question(ctx, log, pending[0], 1)

	log.Info("Protocol: voice code matched, starting factor verification",
		"user_id", userID,
		"factors", len(pending))

	return turn{
		text: joinSentences(greeting(user.Name), question),
		next: model.ClientSession{
			State:             model.StateAuthFactor1,
			CandidateUserID:   &userID,
			PendingFactors:    pending,
			IdentityExpiresAt: expiresAt,
		},
		write: writeSave,
	}, nil
}

func (p *Protocol) handleFactor(ctx context.Context, log *logger.Logger, session model.ClientSession, utterance string) (turn, error) {
	folded := foldText(utterance)
	if p.cancel.matches(folded) {
		log.Info("Protocol: authentication cancelled", "state", session.State.String())
		return reset(phraseCancelled), nil
	}

	index := session.State.FactorIndex()
	if !session.IdentityValid(p.now()) || index < 0 || index >= len(session.PendingFactors) {
		log.Info("Protocol: authentication session expired", "state", session.State.String())
		return reset(phraseExpired), nil
	}

	if folded == "" {
		return stay(session, phraseNotHeard), nil
	}

	accepted, err := p.judge(ctx, session.PendingFactors[index], strings.ToLower(utterance))
	if err != nil {
		return turn{}, err
	}

	if !accepted {
		next := session
		next.FailedAttempts++
		if p.policy.MaxFactorAttempts > 0 && next.FailedAttempts >= p.policy.MaxFactorAttempts {
			log.Warn("Protocol: too many rejected answers, resetting",
				"state", session.State.String(),
				"attempts", next.FailedAttempts)
			return reset(phraseLockedOut), nil
		}
		log.Info("Protocol: answer rejected",
			"state", session.State.String(),
			"attempts", next.FailedAttempts)
		return turn{text: phraseIncorrect, next: next, write: writeSave}, nil
	}

	if nextIndex := index + 1; nextIndex < len(session.PendingFactors) {
		state, _ := model.AuthFactorState(nextIndex)
		question := p.question(ctx, log, session.PendingFactors[nextIndex], nextIndex+1)

		next := session
		next.State = state
		next.FailedAttempts = 0

		log.Info("Protocol: answer accepted", "next", state.String())
		return turn{text: joinSentences(phraseCorrect, question), next: next, write: writeSave}, nil
	}

	return p.finalize(ctx, log, session)
}

// finalize binds the candidate as the authenticated identity once every factor passed.
func (p *Protocol) finalize(ctx context.Context, log *logger.Logger, session model.ClientSession) (turn, error) {
	userID, _ := session.UserID()

	user, err := p.credentials.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Warn("Protocol: user disappeared during authentication", "user_id", userID)
			return reset(phraseAccountInactive), nil
		}
		return turn{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.Active {
		log.Warn("Protocol: user deactivated during authentication", "user_id", userID)
		return reset(phraseAccountInactive), nil
	}

	log.Info("Protocol: user authenticated", "user_id", userID)

	return turn{
		text: welcome(user.Name),
		next: model.ClientSession{
			State:             model.StateAuthenticated,
			CandidateUserID:   &userID,
			IdentityExpiresAt: p.now().Add(p.policy.IdentityTTL),
		},
		write: writeSave,
	}, nil
}

func (p *Protocol) handleAuthenticated(ctx context.Context, log *logger.Logger, session model.ClientSession, utterance string) (turn, error) {
	userID, ok := session.UserID()
	if !ok || !session.IdentityValid(p.now()) {
		log.Info("Protocol: authenticated session expired")
		return reset(phraseExpired), nil
	}

	folded := foldText(utterance)
	if p.logout.matches(folded) {
		log.Info("Protocol: user logged out", "user_id", userID)
		return reset(phraseFarewell), nil
	}

	if folded == "" {
		return stay(session, phraseListening), nil
	}

	log.Debug("Protocol: conversational turn", "user_id", userID, "utterance", utterance)

	userContext, err := p.contexts.GetContext(ctx, userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return turn{}, fmt.Errorf("failed to get user context: %w", err)
		}
		userContext = model.UserContext{}
	}

	oracleCtx, cancel := context.WithTimeout(ctx, p.policy.OracleTimeout)
	defer cancel()

	answer, updated, err := p.engine.Respond(oracleCtx, utterance, userContext)
	if err != nil {
		return turn{}, fmt.Errorf("failed to get conversational response: %w", err)
	}
	if updated == nil {
		updated = userContext
	}

	if err := p.contexts.SaveContext(ctx, userID, updated); err != nil {
		return turn{}, fmt.Errorf("failed to save user context: %w", err)
	}

	return turn{text: answer, next: session, write: writeSave}, nil
}

// judge fails closed: errors and timeouts are never an acceptance.
func (p *Protocol) judge(ctx context.Context, expected, answer string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.policy.OracleTimeout)
	defer cancel()

	accepted, err := p.oracle.IsEquivalent(ctx, expected, answer)
	if err != nil {
		return false, fmt.Errorf("failed to judge answer: %w", err)
	}
	return accepted, nil
}

// question never returns text that contains the factor itself.
func (p *Protocol) question(ctx context.Context, log *logger.Logger, factor string, number int) string {
	fallback := fmt.Sprintf(phraseFallbackQuestion, number)

	ctx, cancel := context.WithTimeout(ctx, p.policy.OracleTimeout)
	defer cancel()

	generated, err := p.questions.QuestionFor(ctx, factor)
	if err != nil {
		log.Warn("Protocol: question generation failed, using fallback",
			"factor", number,
			"error", err.Error())
		return fallback
	}

	question := firstLine(generated)
	if question == "" {
		return fallback
	}
	if f := foldText(factor); f != "" && strings.Contains(foldText(question), f) {
		log.Warn("Protocol: generated question revealed the factor, using fallback", "factor", number)
		return fallback
	}
	if !strings.HasSuffix(question, "?") {
		question += "?"
	}
	return question
}

func greeting(name string) string {
	if name == "" {
		return "Hello."
	}
	return fmt.Sprintf(phraseHello, name)
}

func welcome(name string) string {
	if name == "" {
		return phraseWelcomeAnonymous
	}
	return fmt.Sprintf(phraseWelcome, name)
}

func joinSentences(parts ...string) string {
	return strings.Join(parts, " ")
}
