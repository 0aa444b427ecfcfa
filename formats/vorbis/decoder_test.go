package vorbis

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// mockOggReader simulates the oggvorbis.Reader for testing. Like the real
// reader, Read reports the number of float32 values written (samples times
// channels), never a frame count.
type mockOggReader struct {
	sampleRate   int
	channels     int
	samples      []float32 // interleaved
	offset       int
	maxRead      int // cap values per Read, 0 means no cap
	returnErrors bool
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	if m.maxRead > 0 {
		n = min(n, m.maxRead)
	}

	// Whole frames only
	n = (n / m.channels) * m.channels
	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not Ogg Vorbis data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// 4 stereo frames, already interleaved float32
	testSamples := []float32{0.0, 0.5, 1.0, -0.5, -1.0, 0.25, -0.25, 0.0}

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2, samples: testSamples},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-testSamples[i])) > 0.0001 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2, samples: testSamples},
		sampleRate: 44100,
		channels:   2,
	}

	// An odd-sized request rounds down to a whole frame count.
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4 (2 whole frames)", n)
	}
}

func TestSource_ReadSamples_StereoDrain(t *testing.T) {
	t.Parallel()

	// Enough stereo data that a source miscounting the upstream reader's
	// return value (values, not frames) would report more samples than
	// it wrote or run past the destination buffer.
	testSamples := make([]float32, 12000)
	for i := range testSamples {
		testSamples[i] = float32(i%200)/100.0 - 1.0
	}

	src := &source{
		dec: &mockOggReader{
			sampleRate: 44100,
			channels:   2,
			samples:    testSamples,
			maxRead:    4096,
		},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 8192)
	var got []float32

	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(testSamples) {
		t.Fatalf("drained %d values, want %d", len(got), len(testSamples))
	}

	for i := range got {
		if got[i] != testSamples[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2, samples: []float32{0.1, 0.2}},
		sampleRate: 44100,
		channels:   2,
	}

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 1, samples: []float32{0.5, -0.5}},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 4)

	n1, _ := src.ReadSamples(dst)
	if n1 != 2 {
		t.Errorf("First ReadSamples() n = %d, want 2", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}
	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_DecoderError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2, returnErrors: true},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)

	if err == nil {
		t.Error("ReadSamples() error = nil, want error from decoder")
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// BenchmarkSource_ReadSamples benchmarks decoding throughput
func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(i%200)/100.0 - 1.0
	}

	mock := &mockOggReader{sampleRate: 44100, channels: 2, samples: samples}
	src := &source{
		dec:        mock,
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := src.ReadSamples(dst); err == io.EOF {
			mock.offset = 0
		}
	}
}
