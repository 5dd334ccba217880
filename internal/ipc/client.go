package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()

	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", path)
			},
		},
	})

	client.SetBaseURL("http://slidefx")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "slidefx")

	return client
}

func post(route string, body any) error {
	client := newClient()
	defer client.Close()

	response, err := client.R().SetBody(body).Post(route)
	if err != nil {
		return err
	}
	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("error sending command: %s", response.Status())
	}
	return nil
}

// SendStatus fetches the daemon status.
func SendStatus() (*StatusResponse, error) {
	client := newClient()
	defer client.Close()

	result := StatusResponse{}
	response, err := client.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching status: %s", response.Status())
	}
	return &result, nil
}

func SendStop() error {
	return post("/stop", nil)
}

// SendLoad replaces the daemon's image pair.
func SendLoad(images []string) error {
	return post("/load", images)
}

// SendSet changes the transition kind and/or pins progress.
func SendSet(cmd Command) error {
	return post("/set", cmd)
}

func SendPlay() error {
	return post("/play", nil)
}

func SendPause() error {
	return post("/pause", nil)
}
