package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing. It serves the
// PCM stream byte by byte, so reads may split an int16 sample the way an
// arbitrary io.Reader is allowed to.
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int     // byte offset into the PCM stream
	maxRead      int     // cap bytes per Read, 0 means no cap
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	totalBytes := len(m.samples) * 2
	if m.offset >= totalBytes {
		return 0, io.EOF
	}

	n := min(len(buf), totalBytes-m.offset)
	if m.maxRead > 0 {
		n = min(n, m.maxRead)
	}

	var pcm [2]byte
	for i := 0; i < n; i++ {
		pos := m.offset + i
		binary.LittleEndian.PutUint16(pcm[:], uint16(m.samples[pos/2]))
		buf[i] = pcm[pos%2]
	}

	m.offset += n

	if m.offset >= totalBytes {
		return n, io.EOF
	}

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

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
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 100)},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// 8 samples (stereo: 4 frames)
	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, samples: testSamples},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0, 0.25, -0.25, 0.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_Partial(t *testing.T) {
	t.Parallel()

	testSamples := []int16{100, 200, 300, 400, 500, 600}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, samples: testSamples},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 4)

	n1, err1 := src.ReadSamples(dst)
	if err1 != nil && err1 != io.EOF {
		t.Fatalf("First ReadSamples() error = %v", err1)
	}
	if n1 != 4 {
		t.Errorf("First ReadSamples() n = %d, want 4", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != nil && err2 != io.EOF {
		t.Fatalf("Second ReadSamples() error = %v", err2)
	}
	if n2 != 2 {
		t.Errorf("Second ReadSamples() n = %d, want 2", n2)
	}

	n3, err3 := src.ReadSamples(dst)
	if err3 != io.EOF {
		t.Errorf("Third ReadSamples() error = %v, want io.EOF", err3)
	}
	if n3 != 0 {
		t.Errorf("Third ReadSamples() n = %d, want 0", n3)
	}
}

func TestSource_ReadSamples_OddByteReads(t *testing.T) {
	t.Parallel()

	testSamples := []int16{1000, -2000, 3000, -4000, 5000, -6000}

	// Every underlying read returns an odd byte count, so each one splits
	// an int16 sample. The trailing byte must carry into the next read or
	// the whole stream desynchronizes.
	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: testSamples, maxRead: 3},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, 2)
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
		t.Fatalf("Decoded %d samples, want %d", len(got), len(testSamples))
	}

	for i, s := range testSamples {
		want := float32(s) / 32768.0
		if math.Abs(float64(got[i]-want)) > 0.0001 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_DecoderError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 8000, returnErrors: true},
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
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
		dec:        &mockMP3Reader{sampleRate: 8000},
		sampleRate: 8000,
		channels:   2,
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// BenchmarkSource_ReadSamples benchmarks decoding throughput
func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mock := &mockMP3Reader{sampleRate: 44100, samples: samples}
	src := &source{
		dec:        mock,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
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
