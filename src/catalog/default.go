package catalog

import (
	"designpatterns/src/adapter"
	"designpatterns/src/builder"
	"designpatterns/src/command"
	"designpatterns/src/composite"
	"designpatterns/src/decorator"
	"designpatterns/src/di"
	"designpatterns/src/events"
	"designpatterns/src/facade"
	"designpatterns/src/factory"
	"designpatterns/src/singleton"
	"designpatterns/src/state"
	"designpatterns/src/strategy"
)

// Default returns a registry holding every bundled example.
func Default() *Registry {
	r := NewRegistry()
	for _, ex := range builtin() {
		if err := r.Register(ex); err != nil {
			panic(err)
		}
	}
	return r
}

func builtin() []Example {
	return []Example{
		{
			Name:    "command",
			Kind:    KindBehavioral,
			Summary: "queue order-processing commands and run them in sequence",
			Run:     func(env Env) error { return command.Demo(env.Out, env.Clock, env.Rand) },
		},
		{
			Name:    "observer",
			Kind:    KindBehavioral,
			Summary: "notify listeners subscribed to file event categories",
			Run:     func(env Env) error { return events.Demo(env.Out) },
		},
		{
			Name:    "strategy",
			Kind:    KindBehavioral,
			Summary: "print one message through interchangeable case formatters",
			Run:     func(env Env) error { return strategy.Demo(env.Out) },
		},
		{
			Name:    "state",
			Kind:    KindBehavioral,
			Summary: "switch a user between unauthorized and authorized states",
			Run:     func(env Env) error { return state.Demo(env.Out) },
		},
		{
			Name:    "builder",
			Kind:    KindCreational,
			Summary: "assemble an alert dialog step by step",
			Run:     func(env Env) error { return builder.Demo(env.Out) },
		},
		{
			Name:    "factory",
			Kind:    KindCreational,
			Summary: "pick a dialog factory from a variant selector",
			Run:     func(env Env) error { return factory.Demo(env.Out) },
		},
		{
			Name:    "singleton",
			Kind:    KindCreational,
			Summary: "share one lazily created instance across the process",
			Run:     func(env Env) error { return singleton.Demo(env.Out) },
		},
		{
			Name:    "dependency-injection",
			Kind:    KindCreational,
			Summary: "wire a dependency by hand and through a container",
			Run:     func(env Env) error { return di.Demo(env.Out) },
		},
		{
			Name:    "adapter",
			Kind:    KindStructural,
			Summary: "convert database records into display rows",
			Run:     func(env Env) error { return adapter.Demo(env.Out) },
		},
		{
			Name:    "facade",
			Kind:    KindStructural,
			Summary: "hide a chatty network caller behind a repository",
			Run:     func(env Env) error { return facade.Demo(env.Out, env.Clock, env.Rand, env.Logger) },
		},
		{
			Name:    "composite",
			Kind:    KindStructural,
			Summary: "price a computer as the sum of its nested parts",
			Run:     func(env Env) error { return composite.Demo(env.Out) },
		},
		{
			Name:    "decorator",
			Kind:    KindStructural,
			Summary: "extend a coffee shop by wrapping it",
			Run:     func(env Env) error { return decorator.Demo(env.Out) },
		},
	}
}
