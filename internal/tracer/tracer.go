package tracer

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/example/phonetrace/internal/config"
	"github.com/example/phonetrace/internal/events"
	"github.com/example/phonetrace/internal/phone"
	"github.com/google/uuid"
)

// DefaultModules run when the caller does not request specific modules.
var DefaultModules = []string{"validator", "carrier", "location"}

// Result accumulates everything gathered about one phone number.
type Result struct {
	ID          string                 `json:"id"`
	PhoneNumber string                 `json:"phone_number"`
	Timestamp   string                 `json:"timestamp"`
	Data        map[string]interface{} `json:"data"`
}

// Tracer runs the requested intelligence modules against phone numbers.
type Tracer struct {
	settings config.Settings
	registry Registry

	// Emitter receives NDJSON progress events when non-nil.
	Emitter *events.Emitter
}

// New returns a tracer using the built-in module registry.
func New(settings config.Settings) *Tracer {
	return &Tracer{settings: settings, registry: DefaultRegistry}
}

// Trace gathers intelligence about one phone number. A number that cannot
// be parsed yields a partial result whose data holds no module entries;
// a failing module is recorded under its name as {"error": ...} without
// aborting the rest of the run.
func (t *Tracer) Trace(ctx context.Context, phoneNumber string, modules []string) Result {
	log.Infof("tracing phone number: %s", phoneNumber)

	result := Result{
		ID:          uuid.NewString(),
		PhoneNumber: phoneNumber,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Data:        map[string]interface{}{},
	}

	t.emit("trace-start", map[string]interface{}{"id": result.ID, "phoneNumber": phoneNumber})

	parsed, err := phone.Parse(phoneNumber)
	if err != nil {
		log.WithError(err).Error("invalid phone number format")
		return result
	}
	result.Data["parsed"] = parsed

	if len(modules) == 0 {
		modules = DefaultModules
	}

	for _, name := range modules {
		moduleResult, err := t.runModule(ctx, name, phoneNumber)
		if err != nil {
			log.WithError(err).Errorf("error in module %s", name)
			result.Data[name] = map[string]interface{}{"error": err.Error()}
			continue
		}
		result.Data[name] = moduleResult
		log.Debugf("module %s completed", name)
		t.emit("module-done", map[string]interface{}{"id": result.ID, "module": name})
	}

	t.emit("trace-finished", map[string]interface{}{"id": result.ID, "modules": len(modules)})
	return result
}

// runModule dispatches to the named module, converting a panic into an
// error so one bad module cannot take down a batch.
func (t *Tracer) runModule(ctx context.Context, name, phoneNumber string) (out map[string]interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("module %s panicked: %v", name, r)
		}
	}()

	return t.registry.Lookup(name).Run(ctx, phoneNumber)
}

func (t *Tracer) emit(eventType string, fields map[string]interface{}) {
	if err := t.Emitter.Emit(events.Event{Type: eventType, Fields: fields}); err != nil {
		log.WithError(err).Warn("failed to emit progress event")
	}
}
