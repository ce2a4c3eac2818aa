package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"reward-ops.backend/internal/infrastructure/otp"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/utils"
)

// WelcomeNotifier delivers post-approval welcome messages off the
// request path. Delivery is best-effort: failures are logged and
// dropped, never surfaced to the transaction that approved the account.
type WelcomeNotifier struct {
	provider otp.Provider
	queue    chan welcomeMessage
	stop     chan struct{}
}

type welcomeMessage struct {
	Phone string
	Name  string
}

// NewWelcomeNotifier creates a notifier with a bounded queue
func NewWelcomeNotifier(provider otp.Provider) *WelcomeNotifier {
	return &WelcomeNotifier{
		provider: provider,
		queue:    make(chan welcomeMessage, 256),
		stop:     make(chan struct{}),
	}
}

// Start runs the delivery loop until the context is cancelled or Stop
// is called
func (n *WelcomeNotifier) Start(ctx context.Context) {
	logger.Info(ctx, "welcome notifier started")

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "welcome notifier stopped (context cancelled)")
			return
		case <-n.stop:
			logger.Info(ctx, "welcome notifier stopped")
			return
		case msg := <-n.queue:
			n.deliver(ctx, msg)
		}
	}
}

// Stop shuts down the delivery loop
func (n *WelcomeNotifier) Stop() {
	close(n.stop)
}

// Enqueue queues a welcome message without blocking. A full queue drops
// the message; that is acceptable for a courtesy notification.
func (n *WelcomeNotifier) Enqueue(phone, name string) {
	select {
	case n.queue <- welcomeMessage{Phone: phone, Name: name}:
	default:
		logger.Warn(context.Background(), "welcome queue full, dropping message",
			zap.String("phone", utils.MaskPhone(phone)))
	}
}

func (n *WelcomeNotifier) deliver(ctx context.Context, msg welcomeMessage) {
	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	text := fmt.Sprintf("Welcome %s! Your reward program account has been approved.", msg.Name)
	if err := n.provider.SendText(sendCtx, msg.Phone, text); err != nil {
		logger.Warn(ctx, "welcome message delivery failed",
			zap.String("phone", utils.MaskPhone(msg.Phone)),
			zap.Error(err),
		)
	}
}
