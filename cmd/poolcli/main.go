// poolcli is a one-shot admin client for the multipool portal: it dials
// the portal's TCP admin listener, sends a single command, and prints the
// JSON reply to stdout.
//
// Usage:
//
//	poolcli -address 127.0.0.1:17117 pools
//	poolcli reload
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"time"
)

const dialTimeout = 5 * time.Second

func main() {
	address := flag.String("address", "127.0.0.1:17117", "portal admin listener address")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: poolcli [-address host:port] <pools|coins|reload>")
		os.Exit(2)
	}

	reply, err := send(*address, command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poolcli: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(reply)
}

func send(address, command string) (string, error) {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return "", fmt.Errorf("error connecting to portal at %s: %w", address, err)
	}
	defer conn.Close()

	request, err := json.Marshal(map[string]string{"command": command})
	if err != nil {
		return "", fmt.Errorf("error encoding command: %w", err)
	}

	if _, err := fmt.Fprintf(conn, "%s\n", request); err != nil {
		return "", fmt.Errorf("error sending command: %w", err)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading reply: %w", err)
	}

	return reply[:len(reply)-1], nil
}
