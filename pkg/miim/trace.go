package miim

import "github.com/ksz8863/ksz8863-go/pkg/log"

type traced struct {
	t      Transport
	tracer *log.Tracer
}

// Traced returns a Transport that forwards to t and records one event per
// read or write to logger.
func Traced(t Transport, logger log.Logger, opts ...log.Option) Transport {
	return &traced{t: t, tracer: log.NewTracer(logger, log.TierMIIM, opts...)}
}

func (t *traced) Read(phy, reg uint8) (uint16, error) {
	start := t.tracer.Start()
	v, err := t.t.Read(phy, reg)
	value := v
	if err != nil {
		value = 0
	}
	t.tracer.Record(log.OpRead, &phy, reg, registerName(reg), value, start, err)
	return v, err
}

func (t *traced) Write(phy, reg uint8, data uint16) error {
	start := t.tracer.Start()
	err := t.t.Write(phy, reg, data)
	t.tracer.Record(log.OpWrite, &phy, reg, registerName(reg), data, start, err)
	return err
}

func registerName(code uint8) string {
	a, err := bank.Parse(code)
	if err != nil {
		return ""
	}
	return bank.Layout(a).Name
}
