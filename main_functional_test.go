//go:build functional
// +build functional

// Functional tests for the lpsgateway binary. The binary is compiled once and
// run with in-memory backends; a legacy switch is simulated over TCP and
// upstream responses are posted through the HTTP API.
package main

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"

	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("Functional", func() {
	var (
		binary      string
		session     *gexec.Session
		lpsAddress  string
		httpAddress string
		conn        net.Conn
		serializer  = &serializers.JSON{}
	)

	send := func(msg types.LegacyMessage) {
		data, err := serializer.Encode(msg)
		Expect(err).ToNot(HaveOccurred())
		Expect(serializers.WriteFrame(conn, data)).To(Succeed())
	}

	receive := func() types.LegacyMessage {
		Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())

		data, err := serializers.ReadFrame(conn)
		Expect(err).ToNot(HaveOccurred())

		msg, err := serializer.Decode(data)
		Expect(err).ToNot(HaveOccurred())

		return msg
	}

	get := func(path string) (int, string) {
		resp, err := http.Get("http://" + httpAddress + path)
		Expect(err).ToNot(HaveOccurred())
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		Expect(err).ToNot(HaveOccurred())

		return resp.StatusCode, string(body)
	}

	BeforeSuite(func() {
		var err error

		binary, err = gexec.Build("github.com/batchcorp/lpsgateway")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterSuite(func() {
		gexec.CleanupBuildArtifacts()
	})

	BeforeEach(func() {
		var err error

		lpsAddress = freeAddress()
		httpAddress = freeAddress()

		cmd := exec.Command(binary, "serve",
			"--lps-id", "lps1",
			"--listen-address", lpsAddress,
			"--http-listen-address", httpAddress,
		)

		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		Eventually(func() error {
			conn, err = net.Dial("tcp", lpsAddress)
			return err
		}, 10*time.Second).Should(Succeed())

		Eventually(func() string {
			resp, err := http.Get("http://" + httpAddress + "/v1/sessions")
			if err != nil {
				return ""
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)

			return string(body)
		}, 5*time.Second).Should(ContainSubstring(`"lps_id":"lps1"`))
	})

	AfterEach(func() {
		if conn != nil {
			conn.Close()
		}

		session.Interrupt()
		Eventually(session, 10*time.Second).Should(gexec.Exit(0))
	})

	It("reports health and version", func() {
		code, body := get("/health-check")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"status":"ok"}`))

		code, _ = get("/version")
		Expect(code).To(Equal(http.StatusOK))
	})

	It("accepts upstream responses and keeps the session alive", func() {
		send(types.LegacyMessage{
			0:   "0100",
			3:   "011000",
			4:   "000000010000",
			11:  "000001",
			28:  "D00000070",
			41:  "T1",
			42:  "M1",
			102: "26700000000",
			123: "000000000000001",
		})

		resp, err := http.Post(
			fmt.Sprintf("http://%s/v1/lps/lps1/authorization-responses", httpAddress),
			"application/json",
			bytes.NewBufferString(`{"lpsAuthorizationRequestMessageId":"does-not-exist"}`),
		)
		Expect(err).ToNot(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusAccepted))

		// A response for an unknown request is dropped; the session must
		// still answer the next reversal
		send(types.LegacyMessage{
			0:  "0420",
			11: "000002",
			41: "T1",
			42: "M1",
			90: "0100000999070112000000000000001",
		})

		Expect(receive().MTI()).To(Equal("0430"))
	})

	It("naks a reversal with no original", func() {
		send(types.LegacyMessage{
			0:  "0420",
			7:  "0701120000",
			11: "000999",
			41: "T1",
			42: "M1",
			90: "0100000999070112000000000000001",
		})

		msg := receive()
		Expect(msg.MTI()).To(Equal("0430"))
		Expect(msg[types.FieldResponseCode]).To(Equal("21"))
	})
})
