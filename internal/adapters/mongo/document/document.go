package document

type Document interface {
	GetID() string
}
