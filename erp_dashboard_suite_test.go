package main_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestErpDashboard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ErpDashboard Suite")
}

var _ = Describe("OpenAPI contract", func() {
	It("should ship a valid spec covering every module", func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Validate(loader.Context)).To(Succeed())

		for _, path := range []string{
			"/dashboard/summary",
			"/production", "/inventory", "/finance", "/sales",
			"/marketing", "/employees", "/tax", "/reports",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})
})
