// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavetrim/utils"
)

// Collect16 drains src and returns every sample quantized to 16-bit PCM.
// bufferSize controls the read granularity (4096 is a reasonable default).
// The returned slice keeps the source's interleaving; io.EOF from the
// source terminates collection and is not returned as an error.
func Collect16(src Source, bufferSize int) ([]int16, error) {
	pcm16 := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if cap(pcm16)-len(pcm16) < n {
				newCap := len(pcm16) + max(n, cap(pcm16))
				grown := make([]int16, len(pcm16), newCap)
				copy(grown, pcm16)
				pcm16 = grown
			}

			start := len(pcm16)
			pcm16 = pcm16[:start+n]
			for i := 0; i < n; i++ {
				pcm16[start+i] = utils.Float32ToInt16(buf[i])
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}
