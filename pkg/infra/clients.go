package infra

import (
	"ghroast/pkg/domain/interfaces"
)

type Clients struct {
	repoHosting interfaces.RepoHosting
	textGen     interfaces.TextGenerator
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) RepoHosting() interfaces.RepoHosting {
	return x.repoHosting
}

func (x *Clients) TextGenerator() interfaces.TextGenerator {
	return x.textGen
}

func WithRepoHosting(client interfaces.RepoHosting) Option {
	return func(x *Clients) {
		x.repoHosting = client
	}
}

func WithTextGenerator(client interfaces.TextGenerator) Option {
	return func(x *Clients) {
		x.textGen = client
	}
}
