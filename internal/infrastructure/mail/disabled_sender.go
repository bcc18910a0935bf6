package mail

import (
	"context"

	"angies_cleaning/internal/domain/entities"
	"angies_cleaning/internal/usecase/interfaces"
)

// DisabledSender stands in when relay credentials are absent. Every
// verification fails with the configuration error, so quote submissions are
// answered as service-unavailable while the rest of the API stays up.
type DisabledSender struct {
	reason error
}

var _ interfaces.IMailSender = (*DisabledSender)(nil)

func NewDisabledSender(reason error) *DisabledSender {
	return &DisabledSender{reason: reason}
}

func (s *DisabledSender) Verify(context.Context) error {
	return s.reason
}

func (s *DisabledSender) Send(context.Context, string, entities.QuoteDocument) (string, error) {
	return "", s.reason
}
