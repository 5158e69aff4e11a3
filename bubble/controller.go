package bubble

import (
	"fmt"

	"github.com/dshills/upcast/msg"
	"github.com/dshills/upcast/pattern"
	"github.com/dshills/upcast/tree"
)

// ParentFunc resolves a component's logical parent. Returning nil means
// the component has no parent and the walk stops.
type ParentFunc func(Component) Component

// ChildFunc resolves a named child of a component. Returning (nil, nil)
// means the name resolves to nothing.
type ChildFunc func(parent Component, name string) (Component, error)

// ObserverFunc receives a copy of every spawn notification, independent
// of the bubbling outcome.
type ObserverFunc func(source Component, env *Envelope)

// Controller owns Spawn: it builds the envelope, walks the ancestor
// chain, dispatches handlers, and applies pass directives.
//
// A controller holds no per-message state; each Spawn call owns its own
// envelope and loop state, so re-entrant spawning from inside a handler
// is safe as long as components do not mutate their own tables during a
// bubble that is matching against them.
type Controller struct {
	parent   ParentFunc
	child    ChildFunc
	observer ObserverFunc
	log      Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithParentFunc replaces the default tree-position-based parent policy.
// Per-component ParentProvider overrides still take precedence.
func WithParentFunc(fn ParentFunc) Option {
	return func(c *Controller) { c.parent = fn }
}

// WithChildFunc replaces the default child resolution policy.
// Per-component ChildResolver overrides still take precedence.
func WithChildFunc(fn ChildFunc) Option {
	return func(c *Controller) { c.child = fn }
}

// WithObserver sets a controller-level spawn observer.
func WithObserver(fn ObserverFunc) Option {
	return func(c *Controller) { c.observer = fn }
}

// WithLogger sets the logger used for hop-by-hop debug traces.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a controller. Without options it resolves parents through
// component anchors in the retained tree and children through the
// ChildResolver capability.
func New(opts ...Option) *Controller {
	c := &Controller{log: nopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Spawn bubbles a message upward from source. For ordinary messages the
// result is always nil; for query messages it is the handling ancestor's
// return value. The call is synchronous: all handler and transform
// invocations complete before Spawn returns.
func (c *Controller) Spawn(source Component, name string, payload msg.Payload) (any, error) {
	return c.SpawnEnvelope(source, &Envelope{Name: name, Payload: payload})
}

// SpawnEnvelope bubbles a pre-built envelope. The envelope must carry at
// least a name; ID, payload, source, and the query classification are
// filled in here.
func (c *Controller) SpawnEnvelope(source Component, env *Envelope) (any, error) {
	if source == nil {
		return nil, &BubbleError{Err: fmt.Errorf("%w: nil source component", ErrInvalidMessage)}
	}
	if env == nil || !env.seal(source) {
		return nil, &BubbleError{
			Component: source.ComponentName(),
			Err:       fmt.Errorf("%w: no message name", ErrInvalidMessage),
		}
	}

	c.notify(source, env)

	child := source
	for ancestor := c.parentOf(child); ancestor != nil; ancestor = c.parentOf(child) {
		handled, result, err := c.dispatch(ancestor, env)
		if err != nil {
			return nil, err
		}

		if env.Query() {
			if handled {
				// Short-circuit: a handled query returns immediately,
				// even when the handler's result is nil.
				c.log.Debug("query answered",
					"id", env.ID, "name", env.Name, "component", ancestor.ComponentName())
				return result, nil
			}
			// Queries continue unconditionally until answered.
		} else {
			dir, ok, err := c.passDirective(ancestor, env)
			if err != nil {
				return nil, &BubbleError{Message: env.Name, Component: ancestor.ComponentName(), Err: err}
			}
			if !ok {
				c.log.Debug("message dropped",
					"id", env.ID, "name", env.Name, "component", ancestor.ComponentName(), "handled", handled)
				return nil, nil
			}
			applyDirective(env, dir)
		}

		env.Source = ancestor
		child = ancestor
		c.log.Debug("message forwarded",
			"id", env.ID, "name", env.Name, "component", ancestor.ComponentName())
	}

	if env.Query() {
		return nil, &BubbleError{Message: env.Name, Err: ErrUnhandledQuery}
	}
	return nil, nil
}

// notify emits the local spawn notification before any bubbling.
func (c *Controller) notify(source Component, env *Envelope) {
	if n, ok := source.(Notifier); ok {
		n.MessageSpawned(env.Name, env.Payload)
	}
	if c.observer != nil {
		c.observer(source, env)
	}
	c.log.Debug("message spawned",
		"id", env.ID, "name", env.Name, "source", source.ComponentName(), "query", env.Query())
}

// dispatch runs the ancestor's handler table against the envelope and
// invokes the selected handler, if any.
func (c *Controller) dispatch(ancestor Component, env *Envelope) (bool, any, error) {
	hp, ok := ancestor.(HandlerProvider)
	if !ok {
		return false, nil, nil
	}
	table := hp.OnMessages()
	if len(table) == 0 {
		return false, nil, nil
	}

	_, entry, found, err := pattern.Best(table, env.Name, c.childMatcher(ancestor, env.Source))
	if err != nil {
		return false, nil, &BubbleError{Message: env.Name, Component: ancestor.ComponentName(), Err: err}
	}
	if !found {
		return false, nil, nil
	}

	fn, err := entry.resolve(ancestor)
	if err != nil {
		return false, nil, &BubbleError{Message: env.Name, Component: ancestor.ComponentName(), Err: err}
	}
	return true, fn(env.Payload, env.Source, env.Name), nil
}

// passDirective selects the continuation directive for an ordinary
// message at the given ancestor.
func (c *Controller) passDirective(ancestor Component, env *Envelope) (Directive, bool, error) {
	pp, ok := ancestor.(PassProvider)
	if !ok {
		return nil, false, nil
	}
	return resolvePassSpec(pp.PassMessages(), env.Name, c.childMatcher(ancestor, env.Source))
}

// applyDirective rewrites the envelope for the next hop.
func applyDirective(env *Envelope, dir Directive) {
	switch d := dir.(type) {
	case forward:
		// Unchanged; only the source is updated by the caller.
	case Rename:
		env.Name = string(d)
	case Transform:
		next := &Next{Name: env.Name, Payload: msg.New()}
		d(next, env.Payload)
		if next.Name != "" {
			env.Name = next.Name
		}
		env.Payload = next.Payload
	}
}

// parentOf resolves a component's parent: the per-component override
// first, then the controller policy, then the tree default.
func (c *Controller) parentOf(comp Component) Component {
	if p, ok := comp.(ParentProvider); ok {
		return p.ParentComponent()
	}
	if c.parent != nil {
		return c.parent(comp)
	}
	return AnchorParent(comp)
}

// childOf resolves a named child of a component: the per-component
// override first, then the controller policy.
func (c *Controller) childOf(parent Component, name string) (Component, error) {
	if r, ok := parent.(ChildResolver); ok {
		return r.ChildByName(name)
	}
	if c.child != nil {
		return c.child(parent, name)
	}
	return nil, nil
}

// childMatcher builds the child-qualifier predicate for one bubble step:
// a qualified key matches when the named child of the ancestor is the
// envelope's current source.
func (c *Controller) childMatcher(ancestor, source Component) func(childName string) (bool, error) {
	return func(childName string) (bool, error) {
		child, err := c.childOf(ancestor, childName)
		if err != nil {
			return false, err
		}
		return child != nil && child == source, nil
	}
}

// AnchorParent is the default parent policy: walk the retained tree
// upward from the component's anchor node. Components without an anchor
// have no parent.
func AnchorParent(comp Component) Component {
	a, ok := comp.(Anchored)
	if !ok {
		return nil
	}
	node := a.Anchor()
	if node == nil {
		return nil
	}
	parent, _ := tree.ParentComponent(node).(Component)
	return parent
}
