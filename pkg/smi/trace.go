package smi

import "github.com/ksz8863/ksz8863-go/pkg/log"

type traced struct {
	t      Transport
	tracer *log.Tracer
}

// Traced returns a Transport that forwards to t and records one event per
// read or write to logger.
func Traced(t Transport, logger log.Logger, opts ...log.Option) Transport {
	return &traced{t: t, tracer: log.NewTracer(logger, log.TierSMI, opts...)}
}

func (t *traced) Read(addr uint8) (uint8, error) {
	start := t.tracer.Start()
	v, err := t.t.Read(addr)
	var value uint16
	if err == nil {
		value = uint16(v)
	}
	t.tracer.Record(log.OpRead, nil, addr, registerName(addr), value, start, err)
	return v, err
}

func (t *traced) Write(addr, data uint8) error {
	start := t.tracer.Start()
	err := t.t.Write(addr, data)
	t.tracer.Record(log.OpWrite, nil, addr, registerName(addr), uint16(data), start, err)
	return err
}

func registerName(code uint8) string {
	a, err := bank.Parse(code)
	if err != nil {
		return ""
	}
	return bank.Layout(a).Name
}
