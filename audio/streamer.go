package audio

import "github.com/gopxl/beep"

// bufferStreamer plays a floatBuffer once as centered stereo
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func newBufferStreamer(buf floatBuffer) *bufferStreamer {
	return &bufferStreamer{buf: buf}
}

// Stream implements beep.Streamer
func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer
func (s *bufferStreamer) Err() error {
	return nil
}

var _ beep.Streamer = (*bufferStreamer)(nil)
