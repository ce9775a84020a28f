package reconciliation

import (
	"context"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/logger"
)

// zendeskTarget maps a request status to the zendesk ticket status it
// should correspond to. Remote "closed" also satisfies the closed
// mapping since zendesk closes solved tickets on its own schedule.
var zendeskTarget = map[vo.Status]string{
	vo.StatusOpen:    "open",
	vo.StatusPending: "pending",
	vo.StatusClosed:  "solved",
}

// ProposedZendeskStatus returns the zendesk status a request status
// translates to.
func ProposedZendeskStatus(status vo.Status) string {
	return zendeskTarget[status]
}

func zendeskMatches(remote string, target string) bool {
	if remote == target {
		return true
	}
	return target == "solved" && remote == "closed"
}

// Engine turns committed request status transitions into per-channel
// intents.
type Engine struct {
	zendesk ZendeskGateway
	logger  logger.Interface
}

func NewEngine(zendesk ZendeskGateway, log logger.Interface) *Engine {
	return &Engine{
		zendesk: zendesk,
		logger:  log.Named("reconciliation"),
	}
}

// Reconcile derives intents for a transition from oldStatus to
// newStatus. Only transitions into or out of closed produce intents;
// open/pending shuffles and same-status calls yield an empty result.
//
// The engine reads remote state but never writes it. When the zendesk
// gateway fails for a ticket, that ticket lands in Failures and the
// result is marked incomplete; everything else is still evaluated.
func (e *Engine) Reconcile(ctx context.Context, req *request.Request, oldStatus, newStatus vo.Status) Result {
	result := Result{Intents: []Intent{}}

	if oldStatus == newStatus {
		return result
	}
	if !oldStatus.IsClosed() && !newStatus.IsClosed() {
		return result
	}

	e.evaluateItems(ctx, req, newStatus, &result)

	e.logger.Infow("reconciliation pass complete",
		"request_id", req.ID(),
		"old_status", oldStatus.String(),
		"new_status", newStatus.String(),
		"intents", len(result.Intents),
		"incomplete", result.Incomplete)

	return result
}

// Reevaluate derives intents from the request's current state alone.
// This is how an incomplete pass is repeated: intents are never queued,
// so re-running produces whatever is still outstanding. A closed
// request yields archive intents again; an open one only checks that
// its tickets line up.
func (e *Engine) Reevaluate(ctx context.Context, req *request.Request) Result {
	result := Result{Intents: []Intent{}}

	e.evaluateItems(ctx, req, req.Status(), &result)

	e.logger.Infow("reconciliation re-evaluation complete",
		"request_id", req.ID(),
		"status", req.Status().String(),
		"intents", len(result.Intents),
		"incomplete", result.Incomplete)

	return result
}

func (e *Engine) evaluateItems(ctx context.Context, req *request.Request, newStatus vo.Status, result *Result) {
	for _, item := range req.Items() {
		switch item.Channel() {
		case channel.Gmail:
			// Archiving is only meaningful when the request closes;
			// reopening leaves the mailbox alone.
			if newStatus.IsClosed() {
				result.Intents = append(result.Intents, Intent{
					Type:    IntentArchive,
					Channel: channel.Gmail,
					ItemID:  item.ItemID(),
					Label:   item.Label(),
				})
			}

		case channel.Zendesk:
			intent, failure := e.evaluateZendesk(ctx, item, newStatus)
			if failure != nil {
				result.Failures = append(result.Failures, *failure)
				result.Incomplete = true
			} else if intent != nil {
				result.Intents = append(result.Intents, *intent)
			}

		case channel.GChat, channel.SMS:
			// Deliberate silence: no intent of any kind.
		}
	}
}

func (e *Engine) evaluateZendesk(ctx context.Context, item *request.Item, newStatus vo.Status) (*Intent, *Failure) {
	remote, err := e.zendesk.GetTicketStatus(ctx, item.ItemID())
	if err != nil {
		e.logger.Warnw("failed to fetch ticket status",
			"ticket_id", item.ItemID(), "error", err)
		return nil, &Failure{
			Channel: channel.Zendesk,
			ItemID:  item.ItemID(),
			Reason:  err.Error(),
		}
	}

	target := zendeskTarget[newStatus]
	if zendeskMatches(remote, target) {
		return nil, nil
	}

	// Mismatch: never auto-apply, ask the user.
	return &Intent{
		Type:           IntentConfirm,
		Channel:        channel.Zendesk,
		ItemID:         item.ItemID(),
		Label:          item.Label(),
		CurrentStatus:  remote,
		ProposedStatus: target,
	}, nil
}
