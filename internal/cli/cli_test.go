package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCastEmitsResultSchema(t *testing.T) {
	out, err := execute(t, "cast", "--seed", "7")
	require.NoError(t, err)

	var parsed struct {
		HexResult struct {
			OriginalLines  []int  `json:"original_lines"`
			OriginalBinary string `json:"original_binary"`
			ChangedBinary  string `json:"changed_binary"`
			ChangingLines  []int  `json:"changing_lines"`
		} `json:"hex_result"`
		ProcessLog []struct {
			LineIdx int `json:"line_idx"`
			Value   int `json:"value"`
			Changes []struct {
				Removed  int `json:"removed"`
				NewTotal int `json:"new_total"`
			} `json:"changes"`
		} `json:"process_log"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.HexResult.OriginalLines, 6)
	require.Len(t, parsed.HexResult.OriginalBinary, 6)
	require.Len(t, parsed.ProcessLog, 6)
	for _, line := range parsed.ProcessLog {
		require.Len(t, line.Changes, 3)
		require.Contains(t, []int{6, 7, 8, 9}, line.Value)
	}
	require.NotNil(t, parsed.HexResult.ChangingLines)
}

func TestCastIsDeterministicPerSeed(t *testing.T) {
	first, err := execute(t, "cast", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "cast", "--seed", "42")
	require.NoError(t, err)
	require.Equal(t, first, second)

	other, err := execute(t, "cast", "--seed", "43")
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestCastRejectsBadSpread(t *testing.T) {
	_, err := execute(t, "cast", "--spread", "-2")
	require.ErrorContains(t, err, "--spread")
}

func TestDivinePlainEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/generate":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			prompt := payload["prompt"].(string)
			require.Contains(t, prompt, "此事可成吗")
			require.Contains(t, prompt, "本卦")
			json.NewEncoder(w).Encode(map[string]any{
				"response": "一、**结论**\n能成。",
				"done":     true,
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	t.Setenv("YARROW_DIR", t.TempDir())
	out, err := execute(t, "divine", "此事可成吗", "--plain", "--seed", "1", "--url", srv.URL)
	require.NoError(t, err)

	require.Contains(t, out, "其用四十有九")
	require.Contains(t, out, "[分二]")
	require.Contains(t, out, "本卦")
	// Markdown stripped from the model output.
	require.Contains(t, out, "一、结论")
	require.NotContains(t, out, "**")
}

func TestDivinePlainStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/generate":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			require.Equal(t, true, payload["stream"])
			enc := json.NewEncoder(w)
			enc.Encode(map[string]any{"response": "一、结论\n", "done": false})
			enc.Encode(map[string]any{"response": "能成。", "done": true})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	t.Setenv("YARROW_DIR", t.TempDir())
	out, err := execute(t, "divine", "此事可成吗", "--plain", "--stream", "--seed", "1", "--url", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "一、结论\n能成。")
}

func TestDivineFailsFastWhenDaemonDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	t.Setenv("YARROW_DIR", t.TempDir())
	_, err := execute(t, "divine", "--plain", "--url", srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "无法连接")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "yarrow test"))
}
