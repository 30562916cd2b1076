package trie

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Prefixes(t *testing.T) {
	tr, err := Build([]Literal{
		{Key: "ab", Value: "AB"},
		{Key: "c", Value: "C"},
	}, false)
	require.NoError(t, err)

	var visited []string
	err = tr.Walk(func(_ NodeID, prefix string, depth int) error {
		visited = append(visited, fmt.Sprintf("%d:%s", depth, prefix))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0:A", "1:AB", "1:Ab",
		"0:a", "1:aB", "1:ab",
		"0:C", "0:c",
	}, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	tr, err := Build([]Literal{{Key: "abc", Value: "X"}}, true)
	require.NoError(t, err)

	stop := fmt.Errorf("stop")
	calls := 0
	err = tr.Walk(func(NodeID, string, int) error {
		calls++
		if calls == 2 {
			return stop
		}

		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestPrefixLiterals(t *testing.T) {
	tr, err := Build([]Literal{
		{Key: "GET", Value: "Get"},
		{Key: "GETX", Value: "GetX"},
		{Key: "G", Value: "G"},
		{Key: "POST", Value: "Post"},
	}, true)
	require.NoError(t, err)

	pairs := tr.PrefixLiterals()
	require.Len(t, pairs, 3)
	assert.Equal(t, PrefixPair{Prefix: Literal{"G", "G"}, Longer: Literal{"GET", "Get"}}, pairs[0])
	assert.Equal(t, PrefixPair{Prefix: Literal{"G", "G"}, Longer: Literal{"GETX", "GetX"}}, pairs[1])
	assert.Equal(t, PrefixPair{Prefix: Literal{"GET", "Get"}, Longer: Literal{"GETX", "GetX"}}, pairs[2])
}

func ExampleTrie_Dump() {
	tr, err := Build([]Literal{
		{Key: "on", Value: "On"},
		{Key: "off", Value: "Off"},
		{Key: "1", Value: "One"},
	}, false)
	if err != nil {
		panic(err)
	}

	_ = tr.Dump(os.Stdout)

	// Output:
	// 'O'|'o'
	//   'N'|'n' => On
	//   'F'|'f'
	//     'F'|'f' => Off
	// '1' => One
}
