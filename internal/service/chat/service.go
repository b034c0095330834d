package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/observability/telemetry"
	"github.com/seu-repo/partassist/internal/ports"
	"github.com/seu-repo/partassist/internal/service/nlu"
	"github.com/seu-repo/partassist/internal/service/session"
)

const turnsSubject = "chat.turns"

// TurnEvent is published after every processed turn for async
// consumers such as the analytics worker.
type TurnEvent struct {
	SessionID string        `json:"session_id"`
	Intent    domain.Intent `json:"intent"`
	Source    string        `json:"source"`
	Confident bool          `json:"confident"`
	Query     string        `json:"query"`
	At        time.Time     `json:"at"`
}

// Service turns raw utterances into structured replies. It owns the
// classification pipeline, the session contexts and the dispatch to
// the per-intent handlers.
type Service struct {
	pipeline *nlu.Pipeline
	sessions *session.Manager
	catalog  ports.Catalog
	docs     ports.DocsRetriever
	carts    ports.CartStore
	orders   ports.OrderStore
	queue    ports.MessageQueue
	logger   *zap.Logger
}

func NewService(
	pipeline *nlu.Pipeline,
	sessions *session.Manager,
	catalog ports.Catalog,
	docs ports.DocsRetriever,
	carts ports.CartStore,
	orders ports.OrderStore,
	queue ports.MessageQueue,
	logger *zap.Logger,
) *Service {
	return &Service{
		pipeline: pipeline,
		sessions: sessions,
		catalog:  catalog,
		docs:     docs,
		carts:    carts,
		orders:   orders,
		queue:    queue,
		logger:   logger,
	}
}

// Sessions exposes the session manager for the transport layer's
// lifecycle hooks.
func (s *Service) Sessions() *session.Manager {
	return s.sessions
}

// ProcessTurn handles one utterance end to end. It never returns an
// error: every failure path degrades to a structured reply so the
// client always gets a well-formed frame.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, query string) *domain.Response {
	start := time.Now()
	ctx, span := otel.Tracer("chat").Start(ctx, "ProcessTurn")
	defer span.End()

	params := nlu.ExtractParameters(query)
	sess := s.sessions.Get(sessionID)
	params = sess.Enrich(query, params)

	cls := s.pipeline.Classify(ctx, query, params)
	span.SetAttributes(
		attribute.String("intent", string(cls.Intent)),
		attribute.String("source", string(cls.Source)),
	)

	var resp *domain.Response
	switch cls.Intent {
	case domain.IntentLookup:
		resp = s.handleLookup(ctx, params)
	case domain.IntentCompatibility:
		resp = s.handleCompatibility(ctx, params)
	case domain.IntentInstall:
		resp = s.handleInstall(ctx, query, params)
	case domain.IntentDiagnose:
		resp = s.handleDiagnose(ctx, query, params)
	case domain.IntentCart:
		resp = s.handleCart(ctx, sessionID, params)
	case domain.IntentOrder:
		resp = s.handleOrder(ctx, params)
	default:
		resp = outOfScopeResponse()
	}

	sess.Update(query, cls.Intent, params)
	s.publishTurn(sessionID, query, cls)

	telemetry.TurnsTotal.WithLabelValues(string(cls.Intent), string(cls.Source)).Inc()
	telemetry.TurnLatency.Observe(time.Since(start).Seconds())

	s.logger.Info("turn processed",
		zap.String("session_id", sessionID),
		zap.String("intent", string(cls.Intent)),
		zap.String("source", string(cls.Source)),
		zap.Bool("confident", cls.Confident),
		zap.Duration("latency", time.Since(start)),
	)
	return resp
}

func (s *Service) handleLookup(ctx context.Context, params domain.ExtractedParams) *domain.Response {
	if number := s.resolvePartNumber(params); number != "" {
		part, err := s.catalog.FindPart(ctx, number)
		if err != nil {
			s.logger.Error("part lookup failed", zap.String("part_number", number), zap.Error(err))
			return fallbackResponse(domain.IntentLookup)
		}
		if part != nil {
			return &domain.Response{
				Message:          partSummary(part),
				Intent:           domain.IntentLookup,
				SuggestedActions: actionsFor(domain.IntentLookup),
				Product:          part,
			}
		}
		return &domain.Response{
			Message:          fmt.Sprintf("I couldn't find a part with number %s. Double-check the number, or tell me the part name and your appliance model.", number),
			Intent:           domain.IntentLookup,
			SuggestedActions: actionsFor(domain.IntentLookup),
		}
	}

	if params.PartName != "" {
		parts, err := s.catalog.SearchParts(ctx, params.PartName, params.ApplianceType, 5)
		if err != nil {
			s.logger.Error("part search failed", zap.String("query", params.PartName), zap.Error(err))
			return fallbackResponse(domain.IntentLookup)
		}
		return s.listResponse(parts, fmt.Sprintf("Here's what I found for %q:", params.PartName))
	}

	if params.ModelNumber != "" {
		parts, err := s.catalog.FindByModel(ctx, params.ModelNumber, 5)
		if err != nil {
			s.logger.Error("model lookup failed", zap.String("model", params.ModelNumber), zap.Error(err))
			return fallbackResponse(domain.IntentLookup)
		}
		return s.listResponse(parts, fmt.Sprintf("These parts fit model %s:", params.ModelNumber))
	}

	if params.ApplianceType != "" {
		parts, err := s.catalog.PopularParts(ctx, params.ApplianceType, 5)
		if err != nil {
			s.logger.Error("popular parts failed", zap.String("appliance", params.ApplianceType), zap.Error(err))
			return fallbackResponse(domain.IntentLookup)
		}
		return s.listResponse(parts, fmt.Sprintf("Popular %s parts:", params.ApplianceType))
	}

	return &domain.Response{
		Message:          "Which part are you looking for? A part number (like PS11746337), a part name, or your appliance model number all work.",
		Intent:           domain.IntentLookup,
		SuggestedActions: actionsFor(domain.IntentLookup),
	}
}

func (s *Service) handleCompatibility(ctx context.Context, params domain.ExtractedParams) *domain.Response {
	number := s.resolvePartNumber(params)
	if number == "" {
		return &domain.Response{
			Message:          "Which part would you like to check? Give me the part number or name.",
			Intent:           domain.IntentCompatibility,
			SuggestedActions: actionsFor(domain.IntentCompatibility),
		}
	}
	if params.ModelNumber == "" {
		return &domain.Response{
			Message:          fmt.Sprintf("What's your appliance model number? I'll check whether part %s fits it.", number),
			Intent:           domain.IntentCompatibility,
			SuggestedActions: actionsFor(domain.IntentCompatibility),
		}
	}

	compatible, err := s.catalog.CheckCompatibility(ctx, number, params.ModelNumber)
	if err != nil {
		s.logger.Error("compatibility check failed",
			zap.String("part_number", number),
			zap.String("model", params.ModelNumber),
			zap.Error(err))
		return fallbackResponse(domain.IntentCompatibility)
	}

	msg := fmt.Sprintf("Part %s is not listed as compatible with model %s. I can look for a part that fits if you tell me what you need.", number, params.ModelNumber)
	if compatible {
		msg = fmt.Sprintf("Yes, part %s is compatible with model %s.", number, params.ModelNumber)
	}
	return &domain.Response{
		Message:          msg,
		Intent:           domain.IntentCompatibility,
		SuggestedActions: actionsFor(domain.IntentCompatibility),
		Compatibility: &domain.CompatibilityResult{
			PartNumber:  number,
			ModelNumber: params.ModelNumber,
			Compatible:  compatible,
		},
	}
}

func (s *Service) handleInstall(ctx context.Context, query string, params domain.ExtractedParams) *domain.Response {
	number := s.resolvePartNumber(params)
	if number == "" && params.PartName == "" {
		return &domain.Response{
			Message:          "Which part do you want to install? Tell me the part number or name and I'll pull up the steps.",
			Intent:           domain.IntentInstall,
			SuggestedActions: actionsFor(domain.IntentInstall),
		}
	}

	passages, err := s.docs.Retrieve(ctx, "installation", params.ApplianceType, query, 3)
	if err != nil {
		s.logger.Error("installation docs retrieval failed", zap.Error(err))
		return fallbackResponse(domain.IntentInstall)
	}

	resp := &domain.Response{
		Intent:           domain.IntentInstall,
		SuggestedActions: actionsFor(domain.IntentInstall),
	}
	if number != "" {
		if part, err := s.catalog.FindPart(ctx, number); err == nil && part != nil {
			resp.Product = part
		}
	}
	if len(passages) == 0 {
		resp.Message = "I don't have step-by-step instructions for that part yet. Most parts of this type snap or screw into place after unplugging the appliance. Want me to check a different part?"
		return resp
	}
	resp.Message = fmt.Sprintf("%s\n\n%s", passages[0].Title, passages[0].Content)
	return resp
}

func (s *Service) handleDiagnose(ctx context.Context, query string, params domain.ExtractedParams) *domain.Response {
	passages, err := s.docs.Retrieve(ctx, "troubleshooting", params.ApplianceType, query, 3)
	if err != nil {
		s.logger.Error("troubleshooting docs retrieval failed", zap.Error(err))
		return fallbackResponse(domain.IntentDiagnose)
	}

	resp := &domain.Response{
		Intent:           domain.IntentDiagnose,
		SuggestedActions: actionsFor(domain.IntentDiagnose),
	}

	// A known faulty part gets its replacement suggested alongside the
	// troubleshooting steps.
	if number := s.resolvePartNumber(params); number != "" {
		if part, err := s.catalog.FindPart(ctx, number); err == nil && part != nil {
			resp.Product = part
		}
	}

	if len(passages) == 0 {
		resp.Message = "Let's narrow it down. What appliance is acting up, and what exactly is it doing (not cooling, leaking, not draining)?"
		return resp
	}

	var b strings.Builder
	b.WriteString(passages[0].Title)
	b.WriteString("\n\n")
	b.WriteString(passages[0].Content)
	if resp.Product != nil {
		fmt.Fprintf(&b, "\n\nIf it comes down to a replacement, %s (part %s) is the usual fix.", resp.Product.Name, resp.Product.PartNumber)
	}
	resp.Message = b.String()
	return resp
}

func (s *Service) handleCart(ctx context.Context, sessionID string, params domain.ExtractedParams) *domain.Response {
	action := params.CartAction
	if action == "" {
		action = domain.CartActionView
	}

	switch action {
	case domain.CartActionAdd:
		number := s.resolvePartNumber(params)
		if number == "" {
			return &domain.Response{
				Message:          "Which part should I add? Give me the part number or name.",
				Intent:           domain.IntentCart,
				SuggestedActions: actionsFor(domain.IntentCart),
			}
		}
		part, err := s.catalog.FindPart(ctx, number)
		if err != nil || part == nil {
			if err != nil {
				s.logger.Error("cart add lookup failed", zap.String("part_number", number), zap.Error(err))
				return fallbackResponse(domain.IntentCart)
			}
			return &domain.Response{
				Message:          fmt.Sprintf("I couldn't find part %s to add. Double-check the number?", number),
				Intent:           domain.IntentCart,
				SuggestedActions: actionsFor(domain.IntentCart),
			}
		}
		qty := params.Quantity
		if qty <= 0 {
			qty = 1
		}
		item := domain.CartItem{PartNumber: part.PartNumber, Name: part.Name, Price: part.Price, Quantity: qty}
		if err := s.carts.Add(ctx, sessionID, item); err != nil {
			s.logger.Error("cart add failed", zap.String("session_id", sessionID), zap.Error(err))
			telemetry.CartOperationsTotal.WithLabelValues("add", "error").Inc()
			return fallbackResponse(domain.IntentCart)
		}
		telemetry.CartOperationsTotal.WithLabelValues("add", "ok").Inc()
		return s.cartView(ctx, sessionID, fmt.Sprintf("Added %d x %s to your cart.", qty, part.Name))

	case domain.CartActionRemove:
		number := s.resolvePartNumber(params)
		if number == "" {
			return &domain.Response{
				Message:          "Which part should I remove from your cart?",
				Intent:           domain.IntentCart,
				SuggestedActions: actionsFor(domain.IntentCart),
			}
		}
		if err := s.carts.Remove(ctx, sessionID, number); err != nil {
			s.logger.Error("cart remove failed", zap.String("session_id", sessionID), zap.Error(err))
			telemetry.CartOperationsTotal.WithLabelValues("remove", "error").Inc()
			return fallbackResponse(domain.IntentCart)
		}
		telemetry.CartOperationsTotal.WithLabelValues("remove", "ok").Inc()
		return s.cartView(ctx, sessionID, fmt.Sprintf("Removed part %s from your cart.", number))

	case domain.CartActionClear:
		if err := s.carts.Clear(ctx, sessionID); err != nil {
			s.logger.Error("cart clear failed", zap.String("session_id", sessionID), zap.Error(err))
			telemetry.CartOperationsTotal.WithLabelValues("clear", "error").Inc()
			return fallbackResponse(domain.IntentCart)
		}
		telemetry.CartOperationsTotal.WithLabelValues("clear", "ok").Inc()
		return &domain.Response{
			Message:          "Your cart is empty now.",
			Intent:           domain.IntentCart,
			SuggestedActions: actionsFor(domain.IntentCart),
			Cart:             &domain.Cart{Items: []domain.CartItem{}},
		}

	default:
		return s.cartView(ctx, sessionID, "")
	}
}

func (s *Service) cartView(ctx context.Context, sessionID, prefix string) *domain.Response {
	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		s.logger.Error("cart view failed", zap.String("session_id", sessionID), zap.Error(err))
		telemetry.CartOperationsTotal.WithLabelValues("view", "error").Inc()
		return fallbackResponse(domain.IntentCart)
	}
	telemetry.CartOperationsTotal.WithLabelValues("view", "ok").Inc()

	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(" ")
	}
	if len(cart.Items) == 0 {
		b.WriteString("Your cart is empty.")
	} else {
		fmt.Fprintf(&b, "Your cart has %d item(s), total $%.2f.", len(cart.Items), cart.Total)
	}
	return &domain.Response{
		Message:          b.String(),
		Intent:           domain.IntentCart,
		SuggestedActions: actionsFor(domain.IntentCart),
		Cart:             cart,
	}
}

func (s *Service) handleOrder(ctx context.Context, params domain.ExtractedParams) *domain.Response {
	if params.OrderNumber == "" {
		return &domain.Response{
			Message:          "What's your order number? It looks like ORD followed by six digits, for example ORD123456.",
			Intent:           domain.IntentOrder,
			SuggestedActions: actionsFor(domain.IntentOrder),
		}
	}

	order, err := s.orders.Lookup(ctx, params.OrderNumber)
	if err != nil {
		s.logger.Error("order lookup failed", zap.String("order_number", params.OrderNumber), zap.Error(err))
		return fallbackResponse(domain.IntentOrder)
	}
	if order == nil {
		return &domain.Response{
			Message:          fmt.Sprintf("I couldn't find an order %s. Check the number on your confirmation email and try again.", params.OrderNumber),
			Intent:           domain.IntentOrder,
			SuggestedActions: actionsFor(domain.IntentOrder),
		}
	}

	msg := fmt.Sprintf("Order %s is %s.", order.OrderNumber, strings.ToLower(order.Status))
	if order.TrackingNumber != "" {
		msg += fmt.Sprintf(" Tracking: %s via %s.", order.TrackingNumber, order.Carrier)
	}
	if order.EstimatedDelivery != "" {
		msg += fmt.Sprintf(" Estimated delivery: %s.", order.EstimatedDelivery)
	}
	return &domain.Response{
		Message:          msg,
		Intent:           domain.IntentOrder,
		SuggestedActions: actionsFor(domain.IntentOrder),
		Order:            order,
	}
}

// resolvePartNumber prefers an explicit part number and falls back to
// the well-known default number for a recognized part name.
func (s *Service) resolvePartNumber(params domain.ExtractedParams) string {
	if params.PartNumber != "" {
		return params.PartNumber
	}
	if params.PartName != "" {
		return nlu.DefaultPartNumber(params.PartName)
	}
	return ""
}

func (s *Service) listResponse(parts []domain.Part, heading string) *domain.Response {
	if len(parts) == 0 {
		return &domain.Response{
			Message:          "I didn't find any matching parts. Try a part number, or tell me your appliance model.",
			Intent:           domain.IntentLookup,
			SuggestedActions: actionsFor(domain.IntentLookup),
		}
	}
	if len(parts) == 1 {
		p := parts[0]
		return &domain.Response{
			Message:          partSummary(&p),
			Intent:           domain.IntentLookup,
			SuggestedActions: actionsFor(domain.IntentLookup),
			Product:          &p,
		}
	}

	var b strings.Builder
	b.WriteString(heading)
	for _, p := range parts {
		fmt.Fprintf(&b, "\n- %s (part %s), $%.2f", p.Name, p.PartNumber, p.Price)
	}
	return &domain.Response{
		Message:          b.String(),
		Intent:           domain.IntentLookup,
		SuggestedActions: actionsFor(domain.IntentLookup),
		Parts:            parts,
	}
}

// publishTurn emits the turn event, best effort. Queue trouble never
// affects the reply.
func (s *Service) publishTurn(sessionID, query string, cls domain.Classification) {
	if s.queue == nil {
		return
	}
	event := TurnEvent{
		SessionID: sessionID,
		Intent:    cls.Intent,
		Source:    string(cls.Source),
		Confident: cls.Confident,
		Query:     query,
		At:        time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.queue.Publish(turnsSubject, data); err != nil {
		s.logger.Warn("turn event publish failed", zap.Error(err))
	}
}
