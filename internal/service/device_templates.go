package service

// Firmware de referencia por placa y sensor, devuelto verbatim.
var deviceTemplates = map[string]map[string]string{
	"arduino": {
		"temperature": `
// Arduino Temperature Sensor (DHT22)
#include "DHT.h"
#define DHTPIN 2
#define DHTTYPE DHT22
DHT dht(DHTPIN, DHTTYPE);

void setup() {
    Serial.begin(9600);
    dht.begin();
}

void loop() {
    float temperature = dht.readTemperature();
    float humidity = dht.readHumidity();

    if (!isnan(temperature)) {
        Serial.print("Temperature: ");
        Serial.print(temperature);
        Serial.println("C");

        // Send to web interface
        Serial.print("DATA:");
        Serial.print(temperature);
        Serial.print(",");
        Serial.println(humidity);
    }

    delay(2000);
}`,

		"motion": `
// Arduino Motion Sensor (PIR)
#define PIR_PIN 2
#define LED_PIN 13

void setup() {
    Serial.begin(9600);
    pinMode(PIR_PIN, INPUT);
    pinMode(LED_PIN, OUTPUT);
}

void loop() {
    int motionState = digitalRead(PIR_PIN);

    if (motionState == HIGH) {
        digitalWrite(LED_PIN, HIGH);
        Serial.println("MOTION_DETECTED");
        delay(1000);
    } else {
        digitalWrite(LED_PIN, LOW);
    }

    delay(100);
}`,

		"light": `
// Arduino Light Sensor (LDR)
#define LDR_PIN A0
#define LED_PIN 9

void setup() {
    Serial.begin(9600);
    pinMode(LED_PIN, OUTPUT);
}

void loop() {
    int lightValue = analogRead(LDR_PIN);
    int brightness = map(lightValue, 0, 1023, 0, 255);

    analogWrite(LED_PIN, 255 - brightness); // Inverse control

    Serial.print("Light: ");
    Serial.print(lightValue);
    Serial.print(" Brightness: ");
    Serial.println(brightness);

    delay(500);
}`,
	},

	"raspberry": {
		"temperature": `
# Raspberry Pi Temperature Sensor (DS18B20)
import os
import glob
import time

os.system('modprobe w1-gpio')
os.system('modprobe w1-therm')

base_dir = '/sys/bus/w1/devices/'
device_folder = glob.glob(base_dir + '28*')[0]
device_file = device_folder + '/w1_slave'

def read_temp_raw():
    f = open(device_file, 'r')
    lines = f.readlines()
    f.close()
    return lines

def read_temp():
    lines = read_temp_raw()
    while lines[0].strip()[-3:] != 'YES':
        time.sleep(0.2)
        lines = read_temp_raw()
    equals_pos = lines[1].find('t=')
    if equals_pos != -1:
        temp_string = lines[1][equals_pos+2:]
        temp_c = float(temp_string) / 1000.0
        return temp_c

while True:
    temperature = read_temp()
    print(f"Temperature: {temperature}C")
    time.sleep(1)`,

		"motion": `
# Raspberry Pi Motion Sensor (PIR)
import RPi.GPIO as GPIO
import time

PIR_PIN = 18
LED_PIN = 24

GPIO.setmode(GPIO.BCM)
GPIO.setup(PIR_PIN, GPIO.IN)
GPIO.setup(LED_PIN, GPIO.OUT)

def motion_detected(channel):
    print("Motion detected!")
    GPIO.output(LED_PIN, GPIO.HIGH)
    time.sleep(1)
    GPIO.output(LED_PIN, GPIO.LOW)

GPIO.add_event_detect(PIR_PIN, GPIO.RISING, callback=motion_detected)

try:
    print("PIR Module ready...")
    while True:
        time.sleep(1)
except KeyboardInterrupt:
    print("Quit")
    GPIO.cleanup()`,
	},

	"esp32": {
		"wifi_sensor": `
// ESP32 WiFi Sensor Hub
#include <WiFi.h>
#include <WebServer.h>
#include <ArduinoJson.h>

const char* ssid = "your_wifi";
const char* password = "your_password";

WebServer server(80);

// Sensor pins
#define TEMP_PIN 34
#define LIGHT_PIN 35
#define MOTION_PIN 2

void setup() {
    Serial.begin(115200);
    pinMode(MOTION_PIN, INPUT);

    WiFi.begin(ssid, password);
    while (WiFi.status() != WL_CONNECTED) {
        delay(1000);
        Serial.println("Connecting to WiFi...");
    }

    Serial.println("WiFi connected!");
    Serial.print("IP address: ");
    Serial.println(WiFi.localIP());

    server.on("/sensors", HTTP_GET, handleSensors);
    server.begin();
}

void loop() {
    server.handleClient();
    delay(10);
}

void handleSensors() {
    DynamicJsonDocument json(1024);

    // Read sensors
    int temperature = analogRead(TEMP_PIN);
    int light = analogRead(LIGHT_PIN);
    int motion = digitalRead(MOTION_PIN);

    json["temperature"] = map(temperature, 0, 4095, -40, 85);
    json["light"] = map(light, 0, 4095, 0, 100);
    json["motion"] = motion;
    json["timestamp"] = millis();

    String response;
    serializeJson(json, response);

    server.send(200, "application/json", response);
}`,
	},
}

// DeviceTemplate devuelve el firmware para (board, sensor), o false si
// no hay plantilla registrada.
func DeviceTemplate(board, sensor string) (string, bool) {
	sensors, ok := deviceTemplates[board]
	if !ok {
		return "", false
	}
	code, ok := sensors[sensor]
	return code, ok
}
