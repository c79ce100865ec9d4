package mem

import (
	"github.com/sirupsen/logrus"
)

// Job is one DMA copy. Src and Dst are absolute addresses.
type Job struct {
	Src      uint32
	Dst      uint32
	Length   uint32
	Progress uint32
}

// Unpack decodes a control word: src[31:20] | dst[19:8] | length[7:0],
// with src and dst as byte offsets from DATA_BASE.
func Unpack(control uint32) (job Job) {
	job.Src = DATA_BASE + (control>>20)&0xFFF
	job.Dst = DATA_BASE + (control>>8)&0xFFF
	job.Length = control & 0xFF
	return
}

// Pack encodes a control word for the given offsets from DATA_BASE.
func Pack(srcOffset, dstOffset, length uint32) uint32 {
	return (srcOffset&0xFFF)<<20 | (dstOffset&0xFFF)<<8 | length&0xFF
}

// Dma copies bytes inside Memory, one byte per tick while the bus is idle.
type Dma struct {
	Verbose bool
	OnDone  func(job Job) // Called when a job completes.

	armed  *Job
	active *Job
}

// Arm records a job from a control word. It starts on the next idle tick.
func (dma *Dma) Arm(control uint32) {
	job := Unpack(control)
	dma.armed = &job

	if dma.Verbose {
		logrus.WithFields(logrus.Fields{
			"src":    job.Src,
			"dst":    job.Dst,
			"length": job.Length,
		}).Debug("dma: armed")
	}
}

// Busy reports whether a job is armed or in progress.
func (dma *Dma) Busy() bool {
	return dma.armed != nil || dma.active != nil
}

// Active returns the job in progress.
func (dma *Dma) Active() (job Job, ok bool) {
	if dma.active == nil {
		return
	}
	return *dma.active, true
}

// Tick copies one byte of the active job when idle is set. An armed job
// becomes active, and copies its first byte, on the first idle tick.
func (dma *Dma) Tick(image Image, idle bool) {
	if !idle {
		return
	}

	if dma.active == nil {
		if dma.armed == nil {
			return
		}
		dma.active, dma.armed = dma.armed, nil
	}

	job := dma.active
	if job.Progress < job.Length {
		src := job.Src + job.Progress
		dst := job.Dst + job.Progress
		if value, ok := image[src]; ok {
			image[dst] = value
		} else {
			delete(image, dst)
		}
		job.Progress++
	}

	if job.Progress >= job.Length {
		dma.active = nil
		if dma.Verbose {
			logrus.WithField("length", job.Length).Debug("dma: done")
		}
		if dma.OnDone != nil {
			dma.OnDone(*job)
		}
	}
}

// Reset abandons any job.
func (dma *Dma) Reset() {
	dma.armed = nil
	dma.active = nil
}
