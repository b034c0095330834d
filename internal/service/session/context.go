package session

import (
	"strings"
	"time"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/service/nlu"
)

// historyLimit bounds per-session turn history so a long-lived
// connection cannot grow memory without bound.
const historyLimit = 10

// Turn is one completed exchange in a session.
type Turn struct {
	Query  string
	Intent domain.Intent
	At     time.Time
}

// Context is the per-session conversation memory: the entities and
// intent of recent turns, used to fill in what a follow-up leaves
// unsaid. Not safe for concurrent use; the owning session serializes
// access.
type Context struct {
	SessionID         string
	LastIntent        domain.Intent
	LastPartNumber    string
	LastPartName      string
	LastModelNumber   string
	LastApplianceType string
	History           []Turn
	UpdatedAt         time.Time
}

func NewContext(sessionID string) *Context {
	return &Context{SessionID: sessionID}
}

// Enrich fills absent fields of params from stored context, but only
// when the utterance actually refers back to the conversation. A turn
// that stands on its own is returned untouched: carrying entities into
// it would attach a stale appliance or part to a fresh question, and
// would make an off-topic turn look like it named an entity. Fields
// the current utterance supplies are never overwritten, so enriching
// is idempotent. The stored part number is only carried over when the
// turn has no competing part mention of its own.
func (c *Context) Enrich(text string, params domain.ExtractedParams) domain.ExtractedParams {
	if !nlu.ReferencesPrior(text) {
		return params
	}

	samePart := params.PartName == "" || strings.EqualFold(params.PartName, c.LastPartName)
	if params.PartName == "" {
		params.PartName = c.LastPartName
	}
	if params.PartNumber == "" && samePart {
		params.PartNumber = c.LastPartNumber
	}
	if params.ModelNumber == "" {
		params.ModelNumber = c.LastModelNumber
	}
	if params.ApplianceType == "" {
		params.ApplianceType = c.LastApplianceType
	}
	return params
}

// Update records the outcome of a turn. Stored entities advance
// monotonically: a turn that did not mention a model number leaves the
// remembered one in place rather than clearing it.
func (c *Context) Update(query string, intent domain.Intent, params domain.ExtractedParams) {
	if params.PartNumber != "" {
		c.LastPartNumber = params.PartNumber
	}
	if params.PartName != "" {
		c.LastPartName = params.PartName
	}
	if params.ModelNumber != "" {
		c.LastModelNumber = params.ModelNumber
	}
	if params.ApplianceType != "" {
		c.LastApplianceType = params.ApplianceType
	}
	c.LastIntent = intent
	c.UpdatedAt = time.Now()

	c.History = append(c.History, Turn{Query: query, Intent: intent, At: c.UpdatedAt})
	if len(c.History) > historyLimit {
		c.History = c.History[len(c.History)-historyLimit:]
	}
}
