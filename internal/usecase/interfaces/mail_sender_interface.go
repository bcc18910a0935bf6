package interfaces

import (
	"context"

	"angies_cleaning/internal/domain/entities"
)

// IMailSender abstracts the outbound mail relay (e.g. Gmail SMTP).
//
// The quote pipeline must:
//   - verify relay connectivity/credentials before any send is attempted
//   - dispatch the rendered quotation to the customer with the business
//     address copied, returning a delivery identifier
type IMailSender interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, to string, doc entities.QuoteDocument) (messageID string, err error)
}
