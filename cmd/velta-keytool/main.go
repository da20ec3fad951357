// velta-keytool is a command-line tool for Velta key management: mnemonic
// generation and validation, HD derivation, signing and signature recovery.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/veltachain/velta-devkit/internal/log"
	"github.com/veltachain/velta-devkit/pkg/crypto"
	"github.com/veltachain/velta-devkit/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	logLevel := "info"
	jsonLogs := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json":
			jsonLogs = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel, jsonLogs)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "mnemonic":
		cmdMnemonic(cmdArgs)
	case "keygen":
		cmdKeygen()
	case "derive":
		cmdDerive(cmdArgs)
	case "address":
		cmdAddress(cmdArgs)
	case "sign":
		cmdSign(cmdArgs)
	case "recover":
		cmdRecover(cmdArgs)
	case "inspect":
		cmdInspect(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `velta-keytool - Velta key management

Usage:
  velta-keytool [--log-level LEVEL] [--json] <command> [args]

Commands:
  mnemonic new [--words N]    generate a mnemonic (12, 15, 18, 21 or 24 words)
  mnemonic check              validate a mnemonic read from the terminal
  keygen                      generate a random private key
  derive [--path P] [--passphrase] [--show-private]
                              derive keys/address from a mnemonic; P is
                              relative to the account base m/44'/818'/0'/0
                              (default m/0)
  address <pubkey-hex>        derive the address for a public key
  sign <keyfile> <hash-hex>   sign a 32-byte hash with a hex key file
  recover <hash-hex> <sig-hex> recover the public key from a signature
  inspect <xkey>              decode a base58 extended key
`)
}

// readSecretLine prompts on stderr and reads a line without terminal echo,
// so mnemonics and passphrases never land in shell history or process
// listings.
func readSecretLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}
	// Piped input (tests, scripts).
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func fatal(msg string, err error) {
	log.CLI.Error().Err(err).Msg(msg)
	os.Exit(1)
}

func cmdMnemonic(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: velta-keytool mnemonic new|check")
		os.Exit(1)
	}

	switch args[0] {
	case "new":
		words := 24
		rest := args[1:]
		for len(rest) > 0 {
			switch {
			case rest[0] == "--words" && len(rest) > 1:
				n, err := strconv.Atoi(rest[1])
				if err != nil {
					fatal("parse --words", err)
				}
				words = n
				rest = rest[2:]
			case strings.HasPrefix(rest[0], "--words="):
				n, err := strconv.Atoi(rest[0][len("--words="):])
				if err != nil {
					fatal("parse --words", err)
				}
				words = n
				rest = rest[1:]
			default:
				fmt.Fprintf(os.Stderr, "unknown flag: %s\n", rest[0])
				os.Exit(1)
			}
		}
		mnemonic, err := wallet.GenerateMnemonic(words, nil)
		if err != nil {
			fatal("generate mnemonic", err)
		}
		log.Wallet.Debug().Int("words", words).Msg("mnemonic generated")
		fmt.Println(mnemonic)

	case "check":
		mnemonic, err := readSecretLine("Mnemonic: ")
		if err != nil {
			fatal("read mnemonic", err)
		}
		if wallet.ValidateMnemonic(mnemonic) {
			fmt.Println("valid")
		} else {
			fmt.Println("invalid")
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown mnemonic subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func cmdKeygen() {
	priv, err := crypto.GeneratePrivateKey(nil)
	if err != nil {
		fatal("generate private key", err)
	}
	pub, err := crypto.DerivePublicKey(priv, true)
	if err != nil {
		fatal("derive public key", err)
	}
	addr, err := crypto.AddressFromPublicKey(pub)
	if err != nil {
		fatal("derive address", err)
	}
	fmt.Printf("private=%s\n", hex.EncodeToString(priv))
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("address=%s\n", addr)
}

func cmdDerive(args []string) {
	path := ""
	askPassphrase := false
	showPrivate := false

	for len(args) > 0 {
		switch {
		case args[0] == "--path" && len(args) > 1:
			path = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--path="):
			path = args[0][len("--path="):]
			args = args[1:]
		case args[0] == "--passphrase":
			askPassphrase = true
			args = args[1:]
		case args[0] == "--show-private":
			showPrivate = true
			args = args[1:]
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[0])
			os.Exit(1)
		}
	}

	mnemonic, err := readSecretLine("Mnemonic: ")
	if err != nil {
		fatal("read mnemonic", err)
	}
	passphrase := ""
	if askPassphrase {
		passphrase, err = readSecretLine("Passphrase: ")
		if err != nil {
			fatal("read passphrase", err)
		}
	}

	root, err := wallet.FromMnemonic(mnemonic, passphrase)
	if err != nil {
		fatal("derive root node", err)
	}

	// Supplied paths are relative to the account base m/44'/818'/0'/0.
	indices := wallet.DerivationPath{0}
	if path != "" {
		indices, err = wallet.ParseDerivationPath(path)
		if err != nil {
			fatal("parse derivation path", err)
		}
	}
	base, err := root.DerivePath(wallet.AccountBasePath...)
	if err != nil {
		fatal("derive account base", err)
	}
	node, err := base.DerivePath(indices...)
	if err != nil {
		fatal("derive path", err)
	}
	log.Wallet.Debug().Str("path", indices.String()).Msg("node derived")

	fmt.Printf("path=%s\n", indices.String())
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(node.PublicKeyBytes()))
	fmt.Printf("address=%s\n", node.Address())
	fmt.Printf("xpub=%s\n", node.Neuter().String())
	if showPrivate {
		fmt.Printf("private=%s\n", hex.EncodeToString(node.PrivateKeyBytes()))
		fmt.Printf("xprv=%s\n", node.String())
	}
}

func cmdAddress(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: velta-keytool address <pubkey-hex>")
		os.Exit(1)
	}
	pub, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	if err != nil {
		fatal("decode public key hex", err)
	}
	addr, err := crypto.AddressFromPublicKey(pub)
	if err != nil {
		fatal("derive address", err)
	}
	fmt.Println(addr)
}

func cmdSign(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: velta-keytool sign <keyfile> <hash-hex>")
		os.Exit(1)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatal("read key file", err)
	}
	priv, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		fatal("decode key file hex", err)
	}
	hash, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
	if err != nil {
		fatal("decode hash hex", err)
	}
	sig, err := crypto.Sign(hash, priv)
	if err != nil {
		fatal("sign", err)
	}
	fmt.Println(hex.EncodeToString(sig))
}

func cmdRecover(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: velta-keytool recover <hash-hex> <sig-hex>")
		os.Exit(1)
	}
	hash, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	if err != nil {
		fatal("decode hash hex", err)
	}
	sig, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
	if err != nil {
		fatal("decode signature hex", err)
	}
	pub, err := crypto.Recover(hash, sig)
	if err != nil {
		fatal("recover public key", err)
	}
	addr, err := crypto.AddressFromPublicKey(pub)
	if err != nil {
		fatal("derive address", err)
	}
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("address=%s\n", addr)
}

func cmdInspect(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: velta-keytool inspect <xkey>")
		os.Exit(1)
	}
	node, err := wallet.NodeFromString(args[0])
	if err != nil {
		fatal("decode extended key", err)
	}
	fmt.Printf("private=%t\n", node.IsPrivate())
	fmt.Printf("depth=%d\n", node.Depth())
	fmt.Printf("index=%d\n", node.Index())
	fmt.Printf("parent=%s\n", hex.EncodeToString(node.ParentFingerprint()))
	fmt.Printf("chaincode=%s\n", hex.EncodeToString(node.ChainCode()))
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(node.PublicKeyBytes()))
	fmt.Printf("address=%s\n", node.Address())
}
