package config

// DefaultPort is the REST API listen port
const DefaultPort = "8080"

// DefaultKeySizeBits is the modulus size in bits
const DefaultKeySizeBits = 1024

// DefaultPrimalityRounds is the number of Miller-Rabin rounds per prime
const DefaultPrimalityRounds = 1000
