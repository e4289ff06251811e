package registry_test

import (
	"encoding/json"
	"sync"

	"github.com/icecave/appstatus/registry"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var (
		config  *registry.Config
		random  *sequenceSource
		subject *registry.Registry
	)

	BeforeEach(func() {
		config = registry.MustConfig(
			registry.Entry{Name: "api", Severity: "critical"},
			registry.Entry{Name: "mysql", Severity: "critical"},
			registry.Entry{Name: "vpn", Severity: "high"},
			registry.Entry{Name: "backup", Severity: "warning"},
		)
		random = &sequenceSource{values: []int{0, 1, 2, 1}}
		subject = registry.New(config, random)
	})

	Describe("ListKeys", func() {
		It("returns every configured key with its severity", func() {
			Expect(subject.ListKeys().Map()).To(Equal(map[registry.Key]registry.KeyInfo{
				"api":    {Severity: registry.SeverityCritical},
				"mysql":  {Severity: registry.SeverityCritical},
				"vpn":    {Severity: registry.SeverityHigh},
				"backup": {Severity: registry.SeverityWarning},
			}))
		})

		It("marshals to the documented JSON shape", func() {
			data, err := json.Marshal(subject.ListKeys())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(data).To(MatchJSON(`{
				"api":    {"severity": "critical"},
				"mysql":  {"severity": "critical"},
				"vpn":    {"severity": "high"},
				"backup": {"severity": "warning"}
			}`))
		})

		It("preserves configuration order in the JSON output", func() {
			data, err := json.Marshal(subject.ListKeys())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(data)).To(Equal(
				`{"api":{"severity":"critical"},"mysql":{"severity":"critical"},"vpn":{"severity":"high"},"backup":{"severity":"warning"}}`,
			))
		})

		It("is unchanged across calls", func() {
			first := subject.ListKeys()
			first[0].Info.Severity = registry.SeverityWarning

			Expect(subject.ListKeys()).To(Equal(registry.KeyList{
				{Key: "api", Info: registry.KeyInfo{Severity: registry.SeverityCritical}},
				{Key: "mysql", Info: registry.KeyInfo{Severity: registry.SeverityCritical}},
				{Key: "vpn", Info: registry.KeyInfo{Severity: registry.SeverityHigh}},
				{Key: "backup", Info: registry.KeyInfo{Severity: registry.SeverityWarning}},
			}))
		})

		It("does not consume random draws", func() {
			subject.ListKeys()
			Expect(random.calls).To(Equal(0))
		})
	})

	Describe("GetStatusReport", func() {
		It("pairs one draw per key with the key's severity", func() {
			Expect(subject.GetStatusReport()).To(Equal(registry.StatusReport{
				{Key: "api", Status: registry.KeyStatus{StatusCode: registry.StatusOK, Severity: registry.SeverityCritical}},
				{Key: "mysql", Status: registry.KeyStatus{StatusCode: registry.StatusFailure, Severity: registry.SeverityCritical}},
				{Key: "vpn", Status: registry.KeyStatus{StatusCode: registry.StatusDegraded, Severity: registry.SeverityHigh}},
				{Key: "backup", Status: registry.KeyStatus{StatusCode: registry.StatusFailure, Severity: registry.SeverityWarning}},
			}))
			Expect(random.calls).To(Equal(4))
			Expect(random.bounds).To(ConsistOf(3, 3, 3, 3))
		})

		It("marshals to the documented JSON shape", func() {
			data, err := json.Marshal(subject.GetStatusReport())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(data).To(MatchJSON(`{
				"api":    {"statusCode": 0, "severity": "critical"},
				"mysql":  {"statusCode": 1, "severity": "critical"},
				"vpn":    {"statusCode": 2, "severity": "high"},
				"backup": {"statusCode": 1, "severity": "warning"}
			}`))
		})

		It("folds out-of-range draws back into the enumeration", func() {
			random.values = []int{5, -1, 3, 2}
			report := subject.GetStatusReport()

			for _, item := range report {
				Expect(item.Status.StatusCode.IsValid()).To(BeTrue())
			}
		})

		It("only ever produces valid codes with the configured severity", func() {
			subject = registry.New(config, registry.NewLockedSource(42))

			for i := 0; i < 1000; i++ {
				report := subject.GetStatusReport()
				Expect(report).To(HaveLen(4))

				for _, item := range report {
					Expect(item.Status.StatusCode.IsValid()).To(BeTrue())

					sev, ok := config.Severity(item.Key)
					Expect(ok).To(BeTrue())
					Expect(item.Status.Severity).To(Equal(sev))
				}
			}
		})

		It("draws each status code with roughly uniform frequency", func() {
			subject = registry.New(
				registry.MustConfig(registry.Entry{Name: "api", Severity: "critical"}),
				nil,
			)

			counts := map[registry.StatusCode]int{}
			draws := 10000

			for i := 0; i < draws; i++ {
				counts[subject.GetStatusReport()[0].Status.StatusCode]++
			}

			Expect(counts).To(HaveLen(3))
			for _, code := range registry.StatusCodes {
				Expect(counts[code]).To(BeNumerically("~", draws/3, draws/10))
			}
		})

		It("is safe for concurrent use", func() {
			subject = registry.New(config, registry.NewLockedSource(1))

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					for j := 0; j < 100; j++ {
						Expect(subject.GetStatusReport()).To(HaveLen(4))
					}
				}()
			}
			wg.Wait()
		})
	})

	Describe("New", func() {
		It("uses the default source when none is given", func() {
			subject = registry.New(config, nil)
			Expect(subject.GetStatusReport()).To(HaveLen(4))
			Expect(subject.Config()).To(BeIdenticalTo(config))
		})

		It("panics if the configuration is nil", func() {
			Expect(func() {
				registry.New(nil, nil)
			}).To(Panic())
		})
	})
})

var _ = Describe("LockedSource", func() {
	It("produces the same sequence for the same seed", func() {
		a := registry.NewLockedSource(7)
		b := registry.NewLockedSource(7)

		for i := 0; i < 100; i++ {
			Expect(a.Intn(3)).To(Equal(b.Intn(3)))
		}
	})
})

// sequenceSource is a RandomSource that returns a fixed sequence of values,
// repeating it as necessary.
type sequenceSource struct {
	mutex  sync.Mutex
	values []int
	calls  int
	bounds []int
}

func (s *sequenceSource) Intn(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	v := s.values[s.calls%len(s.values)]
	s.calls++
	s.bounds = append(s.bounds, n)

	return v
}
