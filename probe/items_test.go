package probe_test

import (
	"bytes"
	"encoding/json"

	"github.com/icecave/appstatus/probe"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func decodeFeed(s string) probe.Feed {
	var feed probe.Feed
	err := json.Unmarshal([]byte(s), &feed)
	Expect(err).ShouldNot(HaveOccurred())
	return feed
}

var _ = Describe("Feed", func() {
	It("accepts the severity-annotated object form", func() {
		feed := decodeFeed(`{"api":{"severity":"critical","statusCode":1}}`)

		Expect(feed.Names()).To(Equal([]string{"api"}))
		Expect(feed["api"].Severity).To(Equal("critical"))
		Expect(*feed["api"].StatusCode).To(Equal(1))
	})

	It("accepts a flat array of key names", func() {
		feed := decodeFeed(`["mysql","api"]`)

		Expect(feed.Names()).To(Equal([]string{"api", "mysql"}))
		Expect(feed["api"].StatusCode).To(BeNil())
	})

	It("tolerates components that are not objects", func() {
		feed := decodeFeed(`{"api":"up","vpn":{"severity":5}}`)

		Expect(feed["api"]).To(Equal(probe.Component{}))
		Expect(feed["vpn"]).To(Equal(probe.Component{}))
	})
})

var _ = table.DescribeTable(
	"Severity",
	func(severity, expected string) {
		Expect(probe.Severity(probe.Component{Severity: severity})).To(Equal(expected))
	},
	table.Entry("zabbix severity", "warning", "warning"),
	table.Entry("high", "high", "high"),
	table.Entry("critical", "critical", "disaster"),
	table.Entry("unknown", "catastrophic", "unclassified"),
	table.Entry("missing", "", "unclassified"),
)

var _ = Describe("Discovery", func() {
	It("groups components by severity", func() {
		feed := decodeFeed(`{
			"vpn": {"severity": "high"},
			"api": {"severity": "critical"},
			"mysql": {"severity": "critical"}
		}`)

		items, err := probe.Discovery("web01", feed)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(items).To(Equal([]probe.Item{
			{
				Host:  "web01",
				Key:   "aamv2.discovery[high]",
				Value: `{"data":[{"{#COMPONENT}":"vpn","{#SEVERITY}":"high"}]}`,
			},
			{
				Host:  "web01",
				Key:   "aamv2.discovery[disaster]",
				Value: `{"data":[{"{#COMPONENT}":"api","{#SEVERITY}":"disaster"},{"{#COMPONENT}":"mysql","{#SEVERITY}":"disaster"}]}`,
			},
		}))
	})

	It("returns no items for an empty feed", func() {
		items, err := probe.Discovery("web01", probe.Feed{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(items).To(BeEmpty())
	})
})

var _ = Describe("Metrics", func() {
	It("returns the status code of each component", func() {
		feed := decodeFeed(`{
			"api": {"severity": "critical", "statusCode": 2},
			"backup": {"severity": "warning", "statusCode": 0},
			"vpn": {"severity": "high"}
		}`)

		Expect(probe.Metrics("web01", feed)).To(Equal([]probe.Item{
			{Host: "web01", Key: `aamv2.status["api",disaster]`, Value: "2"},
			{Host: "web01", Key: `aamv2.status["backup",warning]`, Value: "0"},
		}))
	})
})

var _ = Describe("WriteSenderInput", func() {
	It("quotes fields that need it", func() {
		var buf bytes.Buffer

		err := probe.WriteSenderInput(&buf, []probe.Item{
			{Host: "web01", Key: `aamv2.status["api",high]`, Value: "1"},
			{Host: "web 02", Key: "plain.key", Value: ""},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(buf.String()).To(Equal(
			`web01 "aamv2.status[\"api\",high]" 1` + "\n" +
				`"web 02" plain.key ""` + "\n",
		))
	})
})
