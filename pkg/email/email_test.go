package email

import (
	"bufio"
	"context"
	"mime"
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTPServer accepts one session and records the commands and DATA payload.
type fakeSMTPServer struct {
	ln       net.Listener
	replies  fakeReplies
	commands chan []string
	data     chan string
}

// fakeReplies overrides the default positive reply for a command.
type fakeReplies struct {
	rcpt string
	quit string
}

func startFakeSMTPServer(t *testing.T, replies fakeReplies) *fakeSMTPServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	if replies.rcpt == "" {
		replies.rcpt = "250 OK"
	}
	if replies.quit == "" {
		replies.quit = "221 bye"
	}
	s := &fakeSMTPServer{ln: ln, replies: replies, commands: make(chan []string, 1), data: make(chan string, 1)}
	go s.serve()
	return s
}

func (s *fakeSMTPServer) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *fakeSMTPServer) serve() {
	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tp := textproto.NewConn(conn)
	var commands []string
	defer func() { s.commands <- commands }()

	_ = tp.PrintfLine("220 fake.smtp ready")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		commands = append(commands, verb)
		switch verb {
		case "EHLO", "HELO":
			_ = tp.PrintfLine("250 fake.smtp")
		case "MAIL":
			_ = tp.PrintfLine("250 OK")
		case "RCPT":
			_ = tp.PrintfLine("%s", s.replies.rcpt)
		case "DATA":
			_ = tp.PrintfLine("354 go ahead")
			body, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			s.data <- string(body)
			_ = tp.PrintfLine("250 queued")
		case "QUIT":
			_ = tp.PrintfLine("%s", s.replies.quit)
			return
		default:
			_ = tp.PrintfLine("250 OK")
		}
	}
}

func testMessage() Message {
	return Message{
		From:    "forms@example.com",
		To:      "team@example.com",
		ReplyTo: "jane@example.com",
		Subject: "New Contact Inquiry from Jane Doe",
		Body:    "Full Name: Jane Doe\nMessage:\n.hello there",
	}
}

func TestSMTPTransportSend(t *testing.T) {
	srv := startFakeSMTPServer(t, fakeReplies{})
	transport := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: srv.port()})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, transport.Send(ctx, testMessage()))

	data := <-srv.data
	// the dot reader normalises line endings to \n
	assert.Contains(t, data, "Reply-To: jane@example.com\n")
	assert.Contains(t, data, "Subject: New Contact Inquiry from Jane Doe\n")
	assert.Contains(t, data, "Full Name: Jane Doe\n")
	assert.Contains(t, data, "\n.hello there")

	commands := <-srv.commands
	assert.Equal(t, []string{"EHLO", "MAIL", "RCPT", "DATA", "QUIT"}, commands)
}

func TestSMTPTransportRecipientRejected(t *testing.T) {
	srv := startFakeSMTPServer(t, fakeReplies{rcpt: "550 mailbox unavailable"})
	transport := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: srv.port()})

	err := transport.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient rejected")
}

func TestSMTPTransportQuitFailureAfterAcceptance(t *testing.T) {
	srv := startFakeSMTPServer(t, fakeReplies{quit: "500 quit broke"})
	transport := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: srv.port()})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// the server queued the message, so the send counts as delivered
	require.NoError(t, transport.Send(ctx, testMessage()))
	assert.Contains(t, <-srv.data, "Subject: New Contact Inquiry from Jane Doe")
	assert.Equal(t, []string{"EHLO", "MAIL", "RCPT", "DATA", "QUIT"}, <-srv.commands)
}

func TestSMTPTransportNotConfigured(t *testing.T) {
	transport := NewSMTPTransport(SMTPConfig{Host: "", Port: 465})
	assert.False(t, transport.IsConfigured())
	assert.ErrorIs(t, transport.Send(context.Background(), testMessage()), ErrNotConfigured)

	configured := NewSMTPTransport(SMTPConfig{Host: "smtp.example.com", Port: 465})
	msg := testMessage()
	msg.To = ""
	assert.ErrorIs(t, configured.Send(context.Background(), msg), ErrNotConfigured)
}

func TestSMTPTransportDialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	transport := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: port})
	err = transport.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestSMTPTransportHonoursDeadline(t *testing.T) {
	// A server that accepts but never greets.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = bufio.NewReader(conn).ReadString('\n')
		_ = conn.Close()
	}()

	transport := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = transport.Send(ctx, testMessage())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestComposeHeaders(t *testing.T) {
	date := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	msg := testMessage()
	msg.ReplyTo = ""
	msg.Subject = "Hello\r\nBcc: victim@example.com"

	raw := string(Compose(msg, date))
	head, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)

	assert.NotContains(t, head, "Reply-To")
	assert.Contains(t, head, "Subject: Hello Bcc: victim@example.com")
	assert.NotContains(t, head, "\r\nBcc:")
	assert.Contains(t, head, "Date: "+date.Format(time.RFC1123Z))
	assert.Contains(t, head, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, head, "Content-Transfer-Encoding: 8bit")
	assert.True(t, strings.HasSuffix(body, "\r\n"))
	assert.Equal(t, 3, strings.Count(body, "\r\n"))
}

func TestComposeEncodesNonASCIISubject(t *testing.T) {
	msg := testMessage()
	msg.Subject = "New Contact Inquiry from José Müller"
	msg.Body = "Full Name: José Müller"

	raw := string(Compose(msg, time.Now()))
	head, body, _ := strings.Cut(raw, "\r\n\r\n")

	assert.Contains(t, head, "Subject: =?utf-8?q?")
	assert.NotContains(t, head, "José")
	assert.Contains(t, body, "José Müller")

	decoded, err := new(mime.WordDecoder).DecodeHeader(strings.TrimPrefix(headerLine(head, "Subject"), "Subject: "))
	require.NoError(t, err)
	assert.Equal(t, msg.Subject, decoded)
}

func TestComposeKeepsASCIISubject(t *testing.T) {
	head, _, _ := strings.Cut(string(Compose(testMessage(), time.Now())), "\r\n\r\n")
	assert.Equal(t, "Subject: New Contact Inquiry from Jane Doe", headerLine(head, "Subject"))
}

func headerLine(head, name string) string {
	for _, line := range strings.Split(head, "\r\n") {
		if strings.HasPrefix(line, name+": ") {
			return line
		}
	}
	return ""
}

func TestSanitizeHeader(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeHeader(" a\r\nb\nc "))
	assert.Equal(t, "plain", SanitizeHeader("plain"))
}
