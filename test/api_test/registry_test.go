package apitest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
)

// This must be set for these tests to run
const envVar = "BRICK_API_TEST"

const registryUrl = "http://parts.igem.org/cgi/xml/part.cgi"

func TestMain(m *testing.M) {

	if os.Getenv(envVar) == "" {
		fmt.Printf("SKIPPING API TESTS: set %s to run API tests", envVar)
		return
	}

	os.Exit(m.Run())
}

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Registry API Suite")
}

var _ = Describe("iGEM registry", func() {

	client := registry.NewClient(registryUrl, lib.NewHttpClient(30*time.Second))

	It("should load a known part", func() {
		part, err := client.Fetch(context.Background(), "BBa_B0034")
		Expect(err).Should(BeNil())

		_, hasError := part.Document().Error()
		Expect(hasError).Should(BeFalse())

		partType, err := part.Attribute(registry.PartType)
		Expect(err).Should(BeNil())
		Expect(partType).Should(Equal("RBS"))

		sequence, err := part.Sequence()
		Expect(err).Should(BeNil())
		Expect(sequence).Should(Equal("aaagaggagaaa"))
	})

	It("should report an unknown part", func() {
		_, err := client.Fetch(context.Background(), "BBa_definitely_not_a_part")
		Expect(errors.Is(err, registry.ErrPartNotFound)).Should(BeTrue())
	})
})
