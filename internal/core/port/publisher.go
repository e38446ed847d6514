package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type PublisherPort interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}
