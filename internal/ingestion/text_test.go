package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndingsAndBlankRuns(t *testing.T) {
	input := "Name\r\n\r\n\r\n\r\nSkills\r   Go   and   SQL  \n\n\nEnd"
	got := CleanText(input)
	assert.Equal(t, "Name\n\nSkills\nGo and SQL\n\nEnd", got)
}

func TestCleanText_PreservesLineStructure(t *testing.T) {
	input := "Experience\nEngineer at Acme\nProjects\nDashboard"
	assert.Equal(t, input, CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n  \n"))
}

func TestReadResumeText_PlainTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\nEngineer  at  Acme\n"), 0o644))

	text, err := ReadResumeText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer at Acme", text)
}

func TestReadResumeText_MissingFile(t *testing.T) {
	_, err := ReadResumeText(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableFile))
}

func TestReadResumeText_BrokenPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ReadResumeText(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableFile))
}
