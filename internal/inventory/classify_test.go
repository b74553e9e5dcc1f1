package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-intel/internal/types"
)

func TestClassifyDomain_TechnologyFromFolderAndSkills(t *testing.T) {
	domain := ClassifyDomain([]string{"engineering"}, []string{"python", "docker"}, 0.6)
	assert.Equal(t, types.DomainTechnology, domain)
}

func TestClassifyDomain_BusinessFromFolder(t *testing.T) {
	domain := ClassifyDomain([]string{"Sales"}, []string{"sales", "crm"}, 0.6)
	assert.Equal(t, types.DomainBusiness, domain)
}

func TestClassifyDomain_NoSignalsIsGeneric(t *testing.T) {
	domain := ClassifyDomain(nil, nil, 0.6)
	assert.Equal(t, types.DomainGeneric, domain)
}

func TestClassifyDomain_LowConfidenceIsGeneric(t *testing.T) {
	// Mixed signals split the score below the confidence threshold
	domain := ClassifyDomain(nil, []string{"python", "sales", "design"}, 0.6)
	assert.Equal(t, types.DomainGeneric, domain)
}

func TestClassifyDomain_TieIsDeterministic(t *testing.T) {
	// One skill hit each for technology and business; a 0.5 threshold lets
	// the tied top score through, and it must resolve the same way every time
	for i := 0; i < 50; i++ {
		domain := ClassifyDomain(nil, []string{"python", "sales"}, 0.5)
		assert.Equal(t, types.DomainTechnology, domain)
	}
}

func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills("built python services on aws with docker; drove sales pipeline")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "aws")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "sales")
	assert.NotContains(t, skills, "java")
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractExperienceYears(t *testing.T) {
	assert.Equal(t, 8, ExtractExperienceYears("5 years of python, 8+ years of engineering"))
	assert.Equal(t, 3, ExtractExperienceYears("3 yrs experience"))
	assert.Equal(t, 0, ExtractExperienceYears("no numbers here"))
}
