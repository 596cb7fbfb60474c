package parser

import (
	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/models"
)

// Assemble runs the cycle/step state machine over records.
//
// A step is appended to its cycle only when it is closed: by a following st or
// cy record, by de (tabular only) or by the end of input. Malformed records are
// logged and skipped. An empty record list yields an empty document.
func (p *Parser) Assemble(enc Encoding, records []Record) models.Document {
	a := &assembler{enc: enc, log: p.logger.WithField(logging.FieldEncoding, enc.String())}
	for _, rec := range records {
		a.consume(rec)
	}
	a.closeStep()

	cycles, steps, points := a.doc.Counts()
	a.log.Info("Assembled cycle records",
		logging.F(logging.FieldCycles, cycles),
		logging.F(logging.FieldSteps, steps),
		logging.F(logging.FieldPoints, points),
		logging.F(logging.FieldSkipped, a.skipped))

	return a.doc
}

// assembler holds the open cycle/step state of one Assemble call.
type assembler struct {
	enc Encoding
	log logging.Logger
	doc models.Document

	lastCycle    int
	hasLastCycle bool
	lastStep     int
	hasLastStep  bool

	stepOpen bool
	step     models.Step

	skipped int
}

func (a *assembler) consume(rec Record) {
	switch rec.Key {
	case KeyCycle:
		a.closeStep()
		id, err := parseID(rec, a.lastCycle, a.hasLastCycle)
		if err != nil {
			a.defaulted(rec, err, id)
		}
		a.lastCycle, a.hasLastCycle = id, true
		a.lastStep, a.hasLastStep = 0, false
		a.doc.Cycles = append(a.doc.Cycles, models.Cycle{ID: id, Steps: []models.Step{}})

	case KeyStep:
		a.closeStep()
		id, err := parseID(rec, a.lastStep, a.hasLastStep)
		if err != nil {
			a.defaulted(rec, err, id)
		}
		a.lastStep, a.hasLastStep = id, true
		a.step = models.Step{ID: id, Points: []models.MeasurementPoint{}}
		a.stepOpen = true

	case KeyDataPoint:
		if !a.stepOpen {
			a.skipped++
			a.log.Debug("Dropping data point outside of an open step",
				logging.F(logging.FieldLine, rec.Line))
			return
		}
		point, err := a.enc.point(rec)
		if err != nil {
			a.malformed(rec, err)
			return
		}
		a.step.Points = append(a.step.Points, point)

	case KeyTerminator:
		if a.enc.hasTerminator() {
			a.closeStep()
		}
	}
}

// closeStep appends the open step to the current cycle and clears it.
func (a *assembler) closeStep() {
	if !a.stepOpen {
		return
	}
	a.stepOpen = false
	step := a.step
	a.step = models.Step{}

	if len(a.doc.Cycles) == 0 {
		a.skipped++
		a.log.Debug("Dropping step that precedes the first cycle",
			logging.F(logging.FieldStep, step.ID),
			logging.F(logging.FieldPoints, len(step.Points)))
		return
	}
	last := &a.doc.Cycles[len(a.doc.Cycles)-1]
	last.Steps = append(last.Steps, step)
}

func (a *assembler) malformed(rec Record, err error) {
	a.skipped++
	a.log.WithError(err).Debug("Skipping malformed record",
		logging.F(logging.FieldLine, rec.Line),
		logging.F(logging.FieldKey, rec.Key))
}

func (a *assembler) defaulted(rec Record, err error, id int) {
	a.log.WithError(err).Debug("Using default identifier",
		logging.F(logging.FieldLine, rec.Line),
		logging.F(logging.FieldKey, rec.Key),
		logging.F("id", id))
}
