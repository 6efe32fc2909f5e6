package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DemoText is encrypted by the demo command when --text is not given
const DemoText = "This is source text. Looks like it works fine!"

// DemoCmd generates a key pair, encrypts a text with the public key and decrypts it again
func DemoCmd(cmd *cobra.Command, _ []string) error {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	services, _, err := setupServices(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	keys, err := services.KeyGeneration.GenerateKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate keys: %w", err)
	}

	ciphertext, err := services.Cipher.Encrypt(ctx, text, keys.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	plaintext, err := services.Cipher.Decrypt(ctx, ciphertext, keys.PrivateKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public key: %s\n", keys.PublicKey)
	fmt.Fprintf(out, "Private key: %s\n", keys.PrivateKey)
	fmt.Fprintf(out, "Source: %s\n", text)
	fmt.Fprintf(out, "Encrypted: %s\n", ciphertext)
	fmt.Fprintf(out, "Decrypted: %s\n", plaintext)
	return nil
}

// InitDemoCommands registers the demo command
func InitDemoCommands(rootCmd *cobra.Command) error {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate keys and round-trip a sample text through them",
		RunE:  DemoCmd,
	}
	demoCmd.Flags().String("text", DemoText, "Text to round-trip")
	rootCmd.AddCommand(demoCmd)

	return nil
}
